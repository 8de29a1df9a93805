package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/handlers"
	"github.com/nyumbani-farms/herdbook/middleware"
)

// Role tiers, widest to narrowest. Every authenticated member of staff can
// read; writing narrows by how consequential the record is.
var (
	allStaff = []string{
		choices.RoleFarmOwner,
		choices.RoleFarmManager,
		choices.RoleAssistantFarmManager,
		choices.RoleTeamLeader,
		choices.RoleFarmWorker,
	}
	assistantsAndUp = []string{
		choices.RoleFarmOwner,
		choices.RoleFarmManager,
		choices.RoleAssistantFarmManager,
	}
	managersAndUp = []string{
		choices.RoleFarmOwner,
		choices.RoleFarmManager,
	}
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")

	registerHerdRoutes(api)
	registerHealthRoutes(api)
	registerReproductionRoutes(api)
	registerProductionRoutes(api)
	registerInventoryRoutes(api)

	return r
}

func handle(api *mux.Router, path string, roles []string, h http.HandlerFunc, methods ...string) {
	api.Handle(path, middleware.RequireRole(roles, h)).Methods(methods...)
}

// registerHerdRoutes covers breeds and the cow register itself.
func registerHerdRoutes(api *mux.Router) {
	handle(api, "/breeds", allStaff, handlers.GetAllCowBreeds, "GET")
	handle(api, "/breeds", managersAndUp, handlers.CreateCowBreed, "POST")
	handle(api, "/breeds/{id}", allStaff, handlers.GetCowBreed, "GET")
	handle(api, "/breeds/{id}", managersAndUp, handlers.DeleteCowBreed, "DELETE")

	handle(api, "/cows", allStaff, handlers.GetAllCows, "GET")
	handle(api, "/cows", managersAndUp, handlers.CreateCow, "POST")
	handle(api, "/cows/{id}", allStaff, handlers.GetCow, "GET")
	handle(api, "/cows/{id}", managersAndUp, handlers.UpdateCow, "PUT", "PATCH")
	handle(api, "/cows/{id}", managersAndUp, handlers.DeleteCow, "DELETE")
}

func registerHealthRoutes(api *mux.Router) {
	handle(api, "/weight-records", allStaff, handlers.GetAllWeightRecords, "GET")
	handle(api, "/weight-records", assistantsAndUp, handlers.CreateWeightRecord, "POST")
	handle(api, "/weight-records/{id}", allStaff, handlers.GetWeightRecord, "GET")
	handle(api, "/weight-records/{id}", assistantsAndUp, handlers.UpdateWeightRecord, "PUT", "PATCH")
	handle(api, "/weight-records/{id}", assistantsAndUp, handlers.DeleteWeightRecord, "DELETE")

	handle(api, "/quarantine-records", allStaff, handlers.GetAllQuarantineRecords, "GET")
	handle(api, "/quarantine-records", assistantsAndUp, handlers.CreateQuarantineRecord, "POST")
	handle(api, "/quarantine-records/{id}", allStaff, handlers.GetQuarantineRecord, "GET")
	handle(api, "/quarantine-records/{id}", assistantsAndUp, handlers.UpdateQuarantineRecord, "PUT", "PATCH")
	handle(api, "/quarantine-records/{id}", assistantsAndUp, handlers.DeleteQuarantineRecord, "DELETE")

	handle(api, "/culling-records", allStaff, handlers.GetAllCullingRecords, "GET")
	handle(api, "/culling-records", managersAndUp, handlers.CreateCullingRecord, "POST")
	handle(api, "/culling-records/{id}", allStaff, handlers.GetCullingRecord, "GET")
	handle(api, "/culling-records/{id}", managersAndUp, handlers.DeleteCullingRecord, "DELETE")

	handle(api, "/pathogens", allStaff, handlers.GetAllPathogens, "GET")
	handle(api, "/pathogens", assistantsAndUp, handlers.CreatePathogen, "POST")
	handle(api, "/pathogens/{id}", allStaff, handlers.GetPathogen, "GET")
	handle(api, "/pathogens/{id}", assistantsAndUp, handlers.DeletePathogen, "DELETE")

	handle(api, "/disease-categories", allStaff, handlers.GetAllDiseaseCategories, "GET")
	handle(api, "/disease-categories", assistantsAndUp, handlers.CreateDiseaseCategory, "POST")
	handle(api, "/disease-categories/{id}", assistantsAndUp, handlers.DeleteDiseaseCategory, "DELETE")

	handle(api, "/symptoms", allStaff, handlers.GetAllSymptoms, "GET")
	handle(api, "/symptoms", assistantsAndUp, handlers.CreateSymptom, "POST")
	handle(api, "/symptoms/{id}", assistantsAndUp, handlers.DeleteSymptom, "DELETE")

	handle(api, "/diseases", allStaff, handlers.GetAllDiseases, "GET")
	handle(api, "/diseases", assistantsAndUp, handlers.CreateDisease, "POST")
	handle(api, "/diseases/{id}", allStaff, handlers.GetDisease, "GET")
	handle(api, "/diseases/{id}", assistantsAndUp, handlers.UpdateDisease, "PUT", "PATCH")
	handle(api, "/diseases/{id}", assistantsAndUp, handlers.DeleteDisease, "DELETE")

	handle(api, "/treatments", allStaff, handlers.GetAllTreatments, "GET")
	handle(api, "/treatments", assistantsAndUp, handlers.CreateTreatment, "POST")
	handle(api, "/treatments/{id}", allStaff, handlers.GetTreatment, "GET")
	handle(api, "/treatments/{id}", assistantsAndUp, handlers.DeleteTreatment, "DELETE")
}

func registerReproductionRoutes(api *mux.Router) {
	// Heat records are append-only: any hand on the farm may log a sighting,
	// nobody edits or removes one.
	handle(api, "/heat-records", allStaff, handlers.GetAllHeats, "GET")
	handle(api, "/heat-records", allStaff, handlers.CreateHeat, "POST")
	handle(api, "/heat-records/{id}", allStaff, handlers.GetHeat, "GET")
	api.HandleFunc("/heat-records/{id}", methodNotAllowed).Methods("PUT", "PATCH", "DELETE")

	handle(api, "/inseminators", allStaff, handlers.GetAllInseminators, "GET")
	handle(api, "/inseminators", assistantsAndUp, handlers.CreateInseminator, "POST")
	handle(api, "/inseminators/{id}", allStaff, handlers.GetInseminator, "GET")
	handle(api, "/inseminators/{id}", assistantsAndUp, handlers.UpdateInseminator, "PUT", "PATCH")
	handle(api, "/inseminators/{id}", assistantsAndUp, handlers.DeleteInseminator, "DELETE")

	handle(api, "/inseminations", allStaff, handlers.GetAllInseminations, "GET")
	handle(api, "/inseminations", assistantsAndUp, handlers.CreateInsemination, "POST")
	handle(api, "/inseminations/{id}", allStaff, handlers.GetInsemination, "GET")
	handle(api, "/inseminations/{id}", assistantsAndUp, handlers.DeleteInsemination, "DELETE")
	api.HandleFunc("/inseminations/{id}", methodNotAllowed).Methods("PUT", "PATCH")

	handle(api, "/pregnancies", allStaff, handlers.GetAllPregnancies, "GET")
	handle(api, "/pregnancies", assistantsAndUp, handlers.CreatePregnancy, "POST")
	handle(api, "/pregnancies/{id}", allStaff, handlers.GetPregnancy, "GET")
	handle(api, "/pregnancies/{id}", assistantsAndUp, handlers.UpdatePregnancy, "PUT", "PATCH")
	api.HandleFunc("/pregnancies/{id}", methodNotAllowed).Methods("DELETE")
}

func registerProductionRoutes(api *mux.Router) {
	handle(api, "/lactations", allStaff, handlers.GetAllLactations, "GET")
	handle(api, "/lactations", assistantsAndUp, handlers.CreateLactation, "POST")
	handle(api, "/lactations/{id}", allStaff, handlers.GetLactation, "GET")
	handle(api, "/lactations/{id}", assistantsAndUp, handlers.UpdateLactation, "PUT", "PATCH")
	handle(api, "/lactations/{id}", assistantsAndUp, handlers.DeleteLactation, "DELETE")

	handle(api, "/milk-records", allStaff, handlers.GetAllMilkRecords, "GET")
	handle(api, "/milk-records", allStaff, handlers.CreateMilkRecord, "POST")
	handle(api, "/milk-records/{id}", allStaff, handlers.GetMilkRecord, "GET")
	handle(api, "/milk-records/{id}", assistantsAndUp, handlers.UpdateMilkRecord, "PUT", "PATCH")
	handle(api, "/milk-records/{id}", assistantsAndUp, handlers.DeleteMilkRecord, "DELETE")
}

func registerInventoryRoutes(api *mux.Router) {
	handle(api, "/cow-inventory", allStaff, handlers.GetCowInventory, "GET")
	handle(api, "/cow-inventory/history", allStaff, handlers.GetCowInventoryHistory, "GET")
	handle(api, "/cow-inventory/history/export/excel", managersAndUp, handlers.ExportInventoryHistoryToExcel, "GET")
	handle(api, "/cow-inventory/history/export/csv", managersAndUp, handlers.ExportInventoryHistoryToCSV, "GET")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
