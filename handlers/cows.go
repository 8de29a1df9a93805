package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllCows(w http.ResponseWriter, r *http.Request) {
	var cows []models.Cow
	q := config.DB.Preload("Breed").Order("tag_serial")

	params := r.URL.Query()
	if v := params.Get("availability_status"); v != "" {
		q = q.Where("availability_status = ?", v)
	}
	if v := params.Get("gender"); v != "" {
		q = q.Where("gender = ?", v)
	}
	if v := params.Get("category"); v != "" {
		q = q.Where("category = ?", v)
	}
	if v := params.Get("current_pregnancy_status"); v != "" {
		q = q.Where("current_pregnancy_status = ?", v)
	}
	if v := params.Get("name"); v != "" {
		q = q.Where("name LIKE ?", "%"+v+"%")
	}

	if err := q.Find(&cows).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cows)
}

func CreateCow(w http.ResponseWriter, r *http.Request) {
	var cow models.Cow
	if !decodeJSON(w, r, &cow) {
		return
	}
	if err := config.DB.Create(&cow).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cow)
}

func GetCow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var cow models.Cow
	if err := config.DB.Preload("Breed").First(&cow, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cow)
}

func UpdateCow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var cow models.Cow
	if err := config.DB.First(&cow, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &cow) {
		return
	}
	if err := config.DB.Save(&cow).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cow)
}

func DeleteCow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var cow models.Cow
	if err := config.DB.First(&cow, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&cow).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
