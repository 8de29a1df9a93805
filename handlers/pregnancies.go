package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

// pregnancyPayload adds the derived duration and due date to the stored row.
type pregnancyPayload struct {
	models.Pregnancy
	DurationDays int        `json:"durationDays"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
}

func toPregnancyPayload(p models.Pregnancy) pregnancyPayload {
	return pregnancyPayload{
		Pregnancy:    p,
		DurationDays: p.Duration(),
		DueDate:      p.DueDate(),
	}
}

func GetAllPregnancies(w http.ResponseWriter, r *http.Request) {
	var pregnancies []models.Pregnancy
	q := config.DB.Preload("Cow").Order("start_date DESC")
	params := r.URL.Query()
	if v := params.Get("cow_id"); v != "" {
		q = q.Where("cow_id = ?", v)
	}
	if v := params.Get("pregnancy_status"); v != "" {
		q = q.Where("pregnancy_status = ?", v)
	}
	if err := q.Find(&pregnancies).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	payload := make([]pregnancyPayload, 0, len(pregnancies))
	for _, p := range pregnancies {
		payload = append(payload, toPregnancyPayload(p))
	}
	writeJSON(w, http.StatusOK, payload)
}

func CreatePregnancy(w http.ResponseWriter, r *http.Request) {
	var pregnancy models.Pregnancy
	if !decodeJSON(w, r, &pregnancy) {
		return
	}
	if err := config.DB.Create(&pregnancy).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPregnancyPayload(pregnancy))
}

func GetPregnancy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var pregnancy models.Pregnancy
	if err := config.DB.Preload("Cow").First(&pregnancy, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toPregnancyPayload(pregnancy))
}

func UpdatePregnancy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var pregnancy models.Pregnancy
	if err := config.DB.First(&pregnancy, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if !decodeJSON(w, r, &pregnancy) {
		return
	}
	if err := config.DB.Save(&pregnancy).Error; err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPregnancyPayload(pregnancy))
}
