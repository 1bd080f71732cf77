package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ordercontroller "bistro/internal/order/controller"
	restaurantcontroller "bistro/internal/restaurant/controller"
	usercontroller "bistro/internal/user/controller"
)

func NewRouter(
	restaurantCtrl *restaurantcontroller.RestaurantController,
	orderCtrl *ordercontroller.OrderController,
	userCtrl *usercontroller.UserController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/restaurants", func(r chi.Router) {
		r.Post("/", restaurantCtrl.Register)
		r.Get("/", restaurantCtrl.List)

		r.Route("/{restaurantID}", func(r chi.Router) {
			r.Get("/", restaurantCtrl.Get)
			r.Put("/", restaurantCtrl.Update)
			r.Delete("/", restaurantCtrl.Delete)

			r.Route("/menu", func(r chi.Router) {
				r.Get("/", restaurantCtrl.GetMenu)
				r.Post("/", restaurantCtrl.AddMenuItem)
				r.Get("/{itemID}", restaurantCtrl.GetMenuItem)
				r.Put("/{itemID}", restaurantCtrl.UpdateMenuItem)
				r.Delete("/{itemID}", restaurantCtrl.DeleteMenuItem)
			})
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userCtrl.Create)
		r.Get("/{userID}", userCtrl.Get)
		r.Get("/{userID}/orders", orderCtrl.ListOrdersByUser)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.PlaceOrder)
		r.Get("/{orderID}", orderCtrl.GetOrder)
		r.Patch("/{orderID}/status", orderCtrl.UpdateOrderStatus)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
