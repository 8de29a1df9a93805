package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllWeightRecords(w http.ResponseWriter, r *http.Request) {
	var records []models.WeightRecord
	q := config.DB.Order("date_taken DESC")
	if v := r.URL.Query().Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if err := q.Find(&records).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func CreateWeightRecord(w http.ResponseWriter, r *http.Request) {
	var record models.WeightRecord
	if !decodeJSON(w, r, &record) {
		return
	}
	if err := config.DB.Create(&record).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func GetWeightRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.WeightRecord
	if err := config.DB.Preload("Cow").First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func UpdateWeightRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.WeightRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &record) {
		return
	}
	if err := config.DB.Save(&record).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func DeleteWeightRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.WeightRecord{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
