package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

func GetAllMilkRecords(w http.ResponseWriter, r *http.Request) {
	var records []models.Milk
	q := config.DB.Preload("Cow").Order("milking_date DESC")
	params := r.URL.Query()
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if v := params.Get("lactation_id"); v != "" {
		q = q.Where("lactation_id = ?", v)
	}
	if err := q.Find(&records).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func CreateMilkRecord(w http.ResponseWriter, r *http.Request) {
	var record models.Milk
	if !decodeJSON(w, r, &record) {
		return
	}
	if err := config.DB.Create(&record).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func GetMilkRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.Milk
	if err := config.DB.Preload("Cow").First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func UpdateMilkRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var record models.Milk
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

func DeleteMilkRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Milk{}, "id = ?", id).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
