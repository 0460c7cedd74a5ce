package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/shopexperts/rewards/internal/api/v1"
)

const prefixV1 = "/api/v1/rewards"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"/accounts", handler.CreateAccount)
	app.Get(prefixV1+"/account", handler.GetAccount)
	app.Get(prefixV1+"/transactions", handler.GetTransactions)
	app.Post(prefixV1+"/redeem", handler.RedeemPoints)
	app.Post(prefixV1+"/referral", handler.GenerateReferralCode)
	app.Post(prefixV1+"/referral/redeem/:code", handler.RedeemReferralCode)
	app.Get(prefixV1+"/referral/stats", handler.GetReferralStats)

	app.Post(prefixV1+"/hooks/booking", handler.AwardBookingBonus)
	app.Post(prefixV1+"/hooks/review", handler.AwardReviewBonus)
}
