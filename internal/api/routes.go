package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Get("/events", handler.ListEvents)
	api.Get("/events/:id", handler.GetEvent)
	api.Post("/events", handler.AuthRequired, handler.AdminOnly, handler.CreateEvent)
	api.Put("/events/:id", handler.AuthRequired, handler.AdminOnly, handler.UpdateEvent)
	api.Delete("/events/:id", handler.AuthRequired, handler.AdminOnly, handler.DeleteEvent)

	api.Get("/families", handler.ListFamilies)
	api.Get("/families/:id", handler.GetFamily)
	api.Post("/families", handler.AuthRequired, handler.AdminOnly, handler.CreateFamily)
	api.Put("/families/:id", handler.AuthRequired, handler.AdminOnly, handler.UpdateFamily)
	api.Delete("/families/:id", handler.AuthRequired, handler.AdminOnly, handler.DeleteFamily)

	api.Get("/media", handler.ListMedia)
	api.Get("/media/:id", handler.GetMediaItem)
	api.Post("/media", handler.AuthRequired, handler.AdminOnly, handler.CreateMediaItem)
	api.Put("/media/:id", handler.AuthRequired, handler.AdminOnly, handler.UpdateMediaItem)
	api.Delete("/media/:id", handler.AuthRequired, handler.AdminOnly, handler.DeleteMediaItem)

	api.Post("/contact", handler.SubmitContactMessage)
	api.Get("/contact", handler.AuthRequired, handler.AdminOnly, handler.ListContactMessages)
	api.Delete("/contact/:id", handler.AuthRequired, handler.AdminOnly, handler.DeleteContactMessage)

	api.Get("/users", handler.AuthRequired, handler.AdminOnly, handler.ListUsers)
	api.Get("/users/:id", handler.AuthRequired, handler.AdminOnly, handler.GetUser)
	api.Post("/users", handler.AuthRequired, handler.AdminOnly, handler.CreateUser)
	api.Put("/users/:id", handler.AuthRequired, handler.AdminOnly, handler.UpdateUser)
	api.Delete("/users/:id", handler.AuthRequired, handler.AdminOnly, handler.DeleteUser)

	api.Get("/planning", handler.AuthRequired, handler.Planning)
}
