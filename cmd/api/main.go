package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lashstudio/internal/config"
	"lashstudio/internal/database"
	"lashstudio/internal/middleware"
	"lashstudio/internal/modules/calendar"
	"lashstudio/internal/modules/catalog"
	"lashstudio/internal/modules/client"
	"lashstudio/internal/modules/dashboard"
	"lashstudio/internal/modules/finance"
	"lashstudio/internal/modules/messaging"
	"lashstudio/internal/modules/schedule"
	"lashstudio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	appointmentRepo := repository.NewAppointmentRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	clientRepo := repository.NewClientRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)

	scheduleService := schedule.NewService(appointmentRepo, serviceRepo, calendarRepo, cfg)
	scheduleHandler := schedule.NewHandler(scheduleService)

	catalogService := catalog.NewService(serviceRepo, appointmentRepo, cfg)
	catalogHandler := catalog.NewHandler(catalogService)

	clientService := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientService)

	calendarService := calendar.NewService(calendarRepo)
	calendarHandler := calendar.NewHandler(calendarService)

	financeService := finance.NewService(appointmentRepo, cfg.Timezone)
	financeHandler := finance.NewHandler(financeService)

	dashboardService := dashboard.NewService(appointmentRepo, clientRepo, cfg)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	messagingHandler := messaging.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		scheduleHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		clientHandler.RegisterRoutes(v1)
		calendarHandler.RegisterRoutes(v1)
		financeHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
		messagingHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
