package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

// Pathogens

func GetAllPathogens(w http.ResponseWriter, r *http.Request) {
	var pathogens []models.Pathogen
	if err := config.DB.Order("name").Find(&pathogens).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pathogens)
}

func CreatePathogen(w http.ResponseWriter, r *http.Request) {
	var pathogen models.Pathogen
	if !decodeJSON(w, r, &pathogen) {
		return
	}
	if err := config.DB.Create(&pathogen).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pathogen)
}

func GetPathogen(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var pathogen models.Pathogen
	if err := config.DB.First(&pathogen, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, pathogen)
}

func DeletePathogen(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var inUse int64
	if err := config.DB.Model(&models.Disease{}).Where("pathogen_id = ?", id).Count(&inUse).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inUse > 0 {
		http.Error(w, "pathogen is referenced by diseases", http.StatusConflict)
		return
	}
	if err := config.DB.Delete(&models.Pathogen{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Disease categories

func GetAllDiseaseCategories(w http.ResponseWriter, r *http.Request) {
	var categories []models.DiseaseCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func CreateDiseaseCategory(w http.ResponseWriter, r *http.Request) {
	var category models.DiseaseCategory
	if !decodeJSON(w, r, &category) {
		return
	}
	if err := config.DB.Create(&category).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func DeleteDiseaseCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var inUse int64
	if err := config.DB.Model(&models.Disease{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inUse > 0 {
		http.Error(w, "category is referenced by diseases", http.StatusConflict)
		return
	}
	if err := config.DB.Delete(&models.DiseaseCategory{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Symptoms

func GetAllSymptoms(w http.ResponseWriter, r *http.Request) {
	var symptoms []models.Symptom
	if err := config.DB.Order("date_observed DESC").Find(&symptoms).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, symptoms)
}

func CreateSymptom(w http.ResponseWriter, r *http.Request) {
	var symptom models.Symptom
	if !decodeJSON(w, r, &symptom) {
		return
	}
	if err := config.DB.Create(&symptom).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, symptom)
}

func DeleteSymptom(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Symptom{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Diseases

func GetAllDiseases(w http.ResponseWriter, r *http.Request) {
	var diseases []models.Disease
	q := config.DB.Preload("Pathogen").Preload("Category").Order("date_reported DESC")
	params := r.URL.Query()
	if v := params.Get("pathogen_id"); v != "" {
		q = q.Where("pathogen_id = ?", v)
	}
	if v := params.Get("category_id"); v != "" {
		q = q.Where("category_id = ?", v)
	}
	if v := params.Get("is_recovered"); v != "" {
		q = q.Where("is_recovered = ?", v == "true")
	}
	if err := q.Find(&diseases).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, diseases)
}

func CreateDisease(w http.ResponseWriter, r *http.Request) {
	var disease models.Disease
	if !decodeJSON(w, r, &disease) {
		return
	}
	if err := config.DB.Create(&disease).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, disease)
}

func GetDisease(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var disease models.Disease
	err := config.DB.Preload("Pathogen").Preload("Category").
		Preload("Cows").Preload("Symptoms").
		First(&disease, "id = ?", id).Error
	if err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, disease)
}

func UpdateDisease(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var disease models.Disease
	if err := config.DB.First(&disease, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &disease) {
		return
	}
	if err := config.DB.Save(&disease).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disease)
}

func DeleteDisease(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var disease models.Disease
	if err := config.DB.First(&disease, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := config.DB.Select("Cows", "Symptoms").Delete(&disease).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Treatments

func GetAllTreatments(w http.ResponseWriter, r *http.Request) {
	var treatments []models.Treatment
	q := config.DB.Order("date_of_treatment DESC")
	params := r.URL.Query()
	if v := params.Get("disease_id"); v != "" {
		q = q.Where("disease_id = ?", v)
	}
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if err := q.Find(&treatments).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, treatments)
}

func CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var treatment models.Treatment
	if !decodeJSON(w, r, &treatment) {
		return
	}
	if err := config.DB.Create(&treatment).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, treatment)
}

func GetTreatment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var treatment models.Treatment
	if err := config.DB.Preload("Disease").Preload("Cow").First(&treatment, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, treatment)
}

func DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Treatment{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
