package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

// lactationPayload adds the derived day count and stage to the stored row.
type lactationPayload struct {
	models.Lactation
	DaysInLactation int    `json:"daysInLactation"`
	LactationStage  string `json:"lactationStage"`
}

func toLactationPayload(l models.Lactation) lactationPayload {
	return lactationPayload{
		Lactation:       l,
		DaysInLactation: l.DaysInLactation(),
		LactationStage:  l.Stage(),
	}
}

func GetAllLactations(w http.ResponseWriter, r *http.Request) {
	var lactations []models.Lactation
	q := config.DB.Preload("Cow").Order("start_date DESC")
	params := r.URL.Query()
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if params.Get("active") == "true" {
		q = q.Where("actual_end_date IS NULL")
	}
	if err := q.Find(&lactations).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	payload := make([]lactationPayload, 0, len(lactations))
	for _, l := range lactations {
		payload = append(payload, toLactationPayload(l))
	}
	writeJSON(w, http.StatusOK, payload)
}

func CreateLactation(w http.ResponseWriter, r *http.Request) {
	var lactation models.Lactation
	if !decodeJSON(w, r, &lactation) {
		return
	}
	if err := config.DB.Create(&lactation).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLactationPayload(lactation))
}

func GetLactation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var lactation models.Lactation
	if err := config.DB.Preload("Cow").First(&lactation, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toLactationPayload(lactation))
}

func UpdateLactation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var lactation models.Lactation
	if err := config.DB.First(&lactation, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &lactation) {
		return
	}
	if err := config.DB.Save(&lactation).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLactationPayload(lactation))
}

func DeleteLactation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var milkings int64
	if err := config.DB.Model(&models.Milk{}).Where("lactation_id = ?", id).Count(&milkings).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if milkings > 0 {
		http.Error(w, "lactation has milk records", http.StatusConflict)
		return
	}
	if err := config.DB.Delete(&models.Lactation{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
