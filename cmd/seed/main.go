package main

import (
	"context"
	"log"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/drivers/database"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/app/services/dashboards"
)

// Seeds one dashboard document per role. Safe to run repeatedly; the
// repository upserts by role and leaves createdAt untouched on rerun.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	repository := dashboards.NewDashboardMongoRepository(mongoDB, internalConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, dashboard := range dashboardSeeds() {
		if err := repository.UpsertDashboard(ctx, dashboard); err != nil {
			log.Fatalf("Failed to seed dashboard for role %s: %v", dashboard.Role, err)
		}
		log.Printf("Seeded dashboard for role %s", dashboard.Role)
	}

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to close MongoDB: %v", err)
	}
}

func dashboardSeeds() []*models.Dashboard {
	return []*models.Dashboard{
		{
			Role:  models.RoleCustomer,
			Title: "My Health",
			View: map[string]interface{}{
				"greeting":      "Welcome back",
				"activePlan":    "none",
				"nextDelivery":  nil,
				"caloriesToday": 0,
			},
			Sections: []models.DashboardSection{
				{Key: "nutrition", Title: "Nutrition", Data: map[string]interface{}{"meals": []interface{}{}, "dailyTargetKcal": 2000}},
				{Key: "fitness", Title: "Fitness", Data: map[string]interface{}{"workouts": []interface{}{}, "weeklyGoal": 3}},
				{Key: "consults", Title: "Consults", Data: map[string]interface{}{"upcoming": []interface{}{}}},
			},
		},
		{
			Role:  models.RoleDoctor,
			Title: "Practice",
			View: map[string]interface{}{
				"patientsToday":   0,
				"pendingReviews":  0,
				"nextAppointment": nil,
			},
			Sections: []models.DashboardSection{
				{Key: "patients", Title: "Patients", Data: map[string]interface{}{"assigned": []interface{}{}}},
				{Key: "schedule", Title: "Schedule", Data: map[string]interface{}{"slots": []interface{}{}}},
				{Key: "records", Title: "Records", Data: map[string]interface{}{"recent": []interface{}{}}},
			},
		},
		{
			Role:  models.RoleCoach,
			Title: "Coaching",
			View: map[string]interface{}{
				"activeClients":   0,
				"sessionsToday":   0,
				"programsRunning": 0,
			},
			Sections: []models.DashboardSection{
				{Key: "clients", Title: "Clients", Data: map[string]interface{}{"assigned": []interface{}{}}},
				{Key: "programs", Title: "Programs", Data: map[string]interface{}{"templates": []interface{}{}}},
				{Key: "sessions", Title: "Sessions", Data: map[string]interface{}{"upcoming": []interface{}{}}},
			},
		},
		{
			Role:  models.RoleKitchen,
			Title: "Kitchen",
			View: map[string]interface{}{
				"ordersQueued":    0,
				"ordersPreparing": 0,
				"lowStockItems":   0,
			},
			Sections: []models.DashboardSection{
				{Key: "orders", Title: "Orders", Data: map[string]interface{}{"queue": []interface{}{}}},
				{Key: "menu", Title: "Menu", Data: map[string]interface{}{"dishes": []interface{}{}}},
				{Key: "inventory", Title: "Inventory", Data: map[string]interface{}{"items": []interface{}{}}},
			},
		},
		{
			Role:  models.RoleDelivery,
			Title: "Deliveries",
			View: map[string]interface{}{
				"assignedToday": 0,
				"completed":     0,
				"nextStop":      nil,
			},
			Sections: []models.DashboardSection{
				{Key: "routes", Title: "Routes", Data: map[string]interface{}{"planned": []interface{}{}}},
				{Key: "deliveries", Title: "Deliveries", Data: map[string]interface{}{"active": []interface{}{}}},
				{Key: "history", Title: "History", Data: map[string]interface{}{"completed": []interface{}{}}},
			},
		},
		{
			Role:  models.RoleAdmin,
			Title: "Administration",
			View: map[string]interface{}{
				"totalUsers":          0,
				"activeSubscriptions": 0,
				"revenueThisMonth":    0,
			},
			Sections: []models.DashboardSection{
				{Key: "users", Title: "Users", Data: map[string]interface{}{"recent": []interface{}{}}},
				{Key: "subscriptions", Title: "Subscriptions", Data: map[string]interface{}{"byPlan": map[string]interface{}{}}},
				{Key: "reports", Title: "Reports", Data: map[string]interface{}{"available": []interface{}{}}},
			},
		},
	}
}
