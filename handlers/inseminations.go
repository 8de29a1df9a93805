package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

// Inseminators

func GetAllInseminators(w http.ResponseWriter, r *http.Request) {
	var inseminators []models.Inseminator
	if err := config.DB.Order("last_name, first_name").Find(&inseminators).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, inseminators)
}

func CreateInseminator(w http.ResponseWriter, r *http.Request) {
	var inseminator models.Inseminator
	if !decodeJSON(w, r, &inseminator) {
		return
	}
	if err := config.DB.Create(&inseminator).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inseminator)
}

func GetInseminator(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var inseminator models.Inseminator
	if err := config.DB.First(&inseminator, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, inseminator)
}

func UpdateInseminator(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var inseminator models.Inseminator
	if err := config.DB.First(&inseminator, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &inseminator) {
		return
	}
	if err := config.DB.Save(&inseminator).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inseminator)
}

func DeleteInseminator(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var inUse int64
	if err := config.DB.Model(&models.Insemination{}).Where("inseminator_id = ?", id).Count(&inUse).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inUse > 0 {
		http.Error(w, "inseminator has inseminations on record", http.StatusConflict)
		return
	}
	if err := config.DB.Delete(&models.Inseminator{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Inseminations

func GetAllInseminations(w http.ResponseWriter, r *http.Request) {
	var inseminations []models.Insemination
	q := config.DB.Preload("Cow").Preload("Inseminator").Order("date_of_insemination DESC")
	params := r.URL.Query()
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if v := params.Get("success"); v != "" {
		q = q.Where("success = ?", v == "true")
	}
	if err := q.Find(&inseminations).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, inseminations)
}

func CreateInsemination(w http.ResponseWriter, r *http.Request) {
	var insemination models.Insemination
	if !decodeJSON(w, r, &insemination) {
		return
	}
	if err := config.DB.Create(&insemination).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, insemination)
}

func GetInsemination(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var insemination models.Insemination
	err := config.DB.Preload("Cow").Preload("Inseminator").
		First(&insemination, "id = ?", id).Error
	if err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, insemination)
}

func DeleteInsemination(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var insemination models.Insemination
	if err := config.DB.First(&insemination, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&insemination).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
