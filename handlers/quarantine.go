package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllQuarantineRecords(w http.ResponseWriter, r *http.Request) {
	var records []models.QuarantineRecord
	q := config.DB.Order("start_date DESC")
	params := r.URL.Query()
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if v := params.Get("reason"); v != "" {
		q = q.Where("reason = ?", v)
	}
	if params.Get("active") == "true" {
		q = q.Where("end_date IS NULL")
	}
	if err := q.Find(&records).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func CreateQuarantineRecord(w http.ResponseWriter, r *http.Request) {
	var record models.QuarantineRecord
	if !decodeJSON(w, r, &record) {
		return
	}
	if err := config.DB.Create(&record).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func GetQuarantineRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.QuarantineRecord
	if err := config.DB.Preload("Cow").First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func UpdateQuarantineRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.QuarantineRecord
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

func DeleteQuarantineRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.QuarantineRecord{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
