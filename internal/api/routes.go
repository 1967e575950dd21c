package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	api.Get("/docs", handler.Docs)
	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Get("/check-availability", handler.CheckAvailability)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/profile", handler.AuthRequired, handler.UpdateProfile)

	baby := api.Group("/baby", handler.AuthRequired)
	baby.Get("/profile", handler.ListBabies)
	baby.Post("/profile", handler.CreateBaby)
	baby.Get("/profile/:id", handler.GetBaby)
	baby.Put("/profile/:id", handler.UpdateBaby)
	baby.Delete("/profile/:id", handler.DeleteBaby)
	baby.Post("/upload-photo", handler.UploadBabyPhoto)
	baby.Post("/percentile", handler.CalculatePercentile)

	feedings := api.Group("/feedings", handler.AuthRequired)
	feedings.Get("", handler.ListFeedings)
	feedings.Post("", handler.CreateFeeding)
	feedings.Get("/stats", handler.FeedingStats)
	feedings.Get("/:id", handler.GetFeeding)
	feedings.Put("/:id", handler.UpdateFeeding)
	feedings.Delete("/:id", handler.DeleteFeeding)

	sleep := api.Group("/sleep", handler.AuthRequired)
	sleep.Get("", handler.ListSleeps)
	sleep.Post("", handler.CreateSleep)
	sleep.Get("/stats", handler.SleepStats)
	sleep.Get("/current", handler.CurrentSleep)
	sleep.Get("/:id", handler.GetSleep)
	sleep.Put("/:id/end", handler.EndSleep)
	sleep.Put("/:id", handler.UpdateSleep)
	sleep.Delete("/:id", handler.DeleteSleep)

	diapers := api.Group("/diapers", handler.AuthRequired)
	diapers.Get("", handler.ListDiapers)
	diapers.Post("", handler.CreateDiaper)
	diapers.Get("/stats", handler.DiaperStats)
	diapers.Get("/:id", handler.GetDiaper)
	diapers.Put("/:id", handler.UpdateDiaper)
	diapers.Delete("/:id", handler.DeleteDiaper)

	baths := api.Group("/baths", handler.AuthRequired)
	baths.Get("", handler.ListBaths)
	baths.Post("", handler.CreateBath)
	baths.Get("/stats", handler.BathStats)
	baths.Get("/:id", handler.GetBath)
	baths.Put("/:id", handler.UpdateBath)
	baths.Delete("/:id", handler.DeleteBath)

	checkups := api.Group("/checkups", handler.AuthRequired)
	checkups.Get("", handler.ListCheckups)
	checkups.Post("", handler.CreateCheckup)
	checkups.Get("/stats", handler.CheckupStats)
	checkups.Get("/upcoming", handler.UpcomingCheckups)
	checkups.Get("/:id", handler.GetCheckup)
	checkups.Put("/:id", handler.UpdateCheckup)
	checkups.Delete("/:id", handler.DeleteCheckup)

	growth := api.Group("/growth", handler.AuthRequired)
	growth.Get("", handler.ListGrowth)
	growth.Post("", handler.CreateGrowth)
	growth.Get("/:id", handler.GetGrowth)
	growth.Put("/:id", handler.UpdateGrowth)
	growth.Delete("/:id", handler.DeleteGrowth)

	allergies := api.Group("/allergies", handler.AuthRequired)
	allergies.Get("", handler.ListAllergies)
	allergies.Post("", handler.CreateAllergy)
	allergies.Get("/stats", handler.AllergyStats)
	allergies.Get("/:id", handler.GetAllergy)
	allergies.Put("/:id", handler.UpdateAllergy)
	allergies.Delete("/:id", handler.DeleteAllergy)

	vaccinations := api.Group("/vaccinations", handler.AuthRequired)
	vaccinations.Get("", handler.ListVaccinations)
	vaccinations.Post("", handler.CreateVaccination)
	vaccinations.Get("/:id", handler.GetVaccination)
	vaccinations.Put("/:id", handler.UpdateVaccination)
	vaccinations.Delete("/:id", handler.DeleteVaccination)

	milestones := api.Group("/milestones", handler.AuthRequired)
	milestones.Get("", handler.ListMilestones)
	milestones.Post("", handler.CreateMilestone)
	milestones.Get("/:id", handler.GetMilestone)
	milestones.Put("/:id", handler.UpdateMilestone)
	milestones.Delete("/:id", handler.DeleteMilestone)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)
	settings.Put("/password", handler.ChangePassword)
	settings.Delete("/account", handler.DeleteAccount)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("", handler.CreateNotification)
	notifications.Get("/unread-count", handler.UnreadNotificationCount)
	notifications.Put("/read-all", handler.MarkAllNotificationsRead)
	notifications.Get("/:id", handler.GetNotification)
	notifications.Put("/:id/read", handler.MarkNotificationRead)
	notifications.Delete("/:id", handler.DeleteNotification)

	api.Get("/dashboard", handler.AuthRequired, handler.Dashboard)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
