package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllCowBreeds(w http.ResponseWriter, r *http.Request) {
	var breeds []models.CowBreed
	q := config.DB.Order("name")
	if name := r.URL.Query().Get("name"); name != "" {
		q = q.Where("name = ?", name)
	}
	if err := q.Find(&breeds).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, breeds)
}

func CreateCowBreed(w http.ResponseWriter, r *http.Request) {
	var breed models.CowBreed
	if !decodeJSON(w, r, &breed) {
		return
	}
	if err := config.DB.Create(&breed).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, breed)
}

func GetCowBreed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var breed models.CowBreed
	if err := config.DB.First(&breed, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, breed)
}

func DeleteCowBreed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var breed models.CowBreed
	if err := config.DB.First(&breed, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var inUse int64
	if err := config.DB.Model(&models.Cow{}).Where("breed_id = ?", breed.ID).Count(&inUse).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inUse > 0 {
		http.Error(w, "breed is referenced by existing cows", http.StatusConflict)
		return
	}
	if err := config.DB.Delete(&breed).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
