package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllHeats(w http.ResponseWriter, r *http.Request) {
	var heats []models.Heat
	q := config.DB.Preload("Cow").Order("observation_time DESC")
	if v := r.URL.Query().Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if err := q.Find(&heats).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, heats)
}

func CreateHeat(w http.ResponseWriter, r *http.Request) {
	var heat models.Heat
	if !decodeJSON(w, r, &heat) {
		return
	}
	if err := config.DB.Create(&heat).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, heat)
}

func GetHeat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var heat models.Heat
	if err := config.DB.Preload("Cow").First(&heat, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, heat)
}
