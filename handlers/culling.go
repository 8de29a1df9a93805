package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllCullingRecords(w http.ResponseWriter, r *http.Request) {
	var records []models.CullingRecord
	q := config.DB.Preload("Cow").Order("date_carried DESC")
	if v := r.URL.Query().Get("reason"); v != "" {
		q = q.Where("reason = ?", v)
	}
	if err := q.Find(&records).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func CreateCullingRecord(w http.ResponseWriter, r *http.Request) {
	var record models.CullingRecord
	if !decodeJSON(w, r, &record) {
		return
	}
	if err := config.DB.Create(&record).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func GetCullingRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.CullingRecord
	if err := config.DB.Preload("Cow").First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func DeleteCullingRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.CullingRecord{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
