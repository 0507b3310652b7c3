package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/guardian/{guardianID}", listByGuardianHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/vaccines", addVaccineHandler(svc))
		pr.Post("/{petID}/dewormers", addDewormerHandler(svc))
		pr.Post("/{petID}/reminders", addReminderHandler(svc))
	})
}

type createPetRequest struct {
	GuardianID      string  `json:"guardian_id"`
	Name            *string `json:"name" validate:"omitempty,max=100"`
	BirthDate       string  `json:"birth_date"` // YYYY-MM-DD
	Breed           *string `json:"breed" validate:"omitempty,max=50"`
	Sex             string  `json:"sex" validate:"omitempty,oneof=MALE FEMALE"`
	IsCastrated     *bool   `json:"is_castrated"`
	MicrochipNumber *string `json:"microchip_number" validate:"omitempty,max=30"`
	History         *string `json:"history"`
}

// updatePetRequest: breed nil o vacío no cambia nada.
// microchip_number / history: ausente = no tocar, null = limpiar.
type updatePetRequest struct {
	Breed           *string `json:"breed" validate:"omitempty,max=50"`
	MicrochipNumber *string `json:"microchip_number" validate:"omitempty,max=30"`
	History         *string `json:"history"`
}

type vaccineRequest struct {
	VaccineName  string  `json:"vaccine_name" validate:"max=100"`
	AppliedOn    string  `json:"applied_on"`
	NextDoseOn   *string `json:"next_dose_on"`
	BatchNumber  string  `json:"batch_number" validate:"max=50"`
	Veterinarian string  `json:"veterinarian" validate:"max=100"`
	Notes        string  `json:"notes"`
}

type dewormerRequest struct {
	ProductName string  `json:"product_name" validate:"max=100"`
	AppliedOn   string  `json:"applied_on"`
	NextDoseOn  *string `json:"next_dose_on"`
	Dose        string  `json:"dose" validate:"max=50"`
	WeightKg    float64 `json:"weight_kg"`
	Notes       string  `json:"notes"`
}

type reminderRequest struct {
	Kind  string `json:"kind" validate:"omitempty,oneof=VACCINE DEWORMER CHECKUP OTHER"`
	Title string `json:"title" validate:"max=100"`
	DueOn string `json:"due_on"`
	Notes string `json:"notes"`
}

type petResponse struct {
	ID                   string             `json:"id"`
	GuardianID           string             `json:"guardian_id"`
	Name                 string             `json:"name"`
	BirthDate            string             `json:"birth_date"`
	AgeInYears           int                `json:"age_in_years"`
	Breed                string             `json:"breed"`
	Sex                  Sex                `json:"sex"`
	IsCastrated          bool               `json:"is_castrated"`
	MicrochipNumber      *string            `json:"microchip_number"`
	History              *string            `json:"history"`
	VaccineApplications  []vaccineResponse  `json:"vaccine_applications"`
	DewormerApplications []dewormerResponse `json:"dewormer_applications"`
	Reminders            []reminderResponse `json:"reminders"`
	CreatedAt            *time.Time         `json:"created_at,omitempty"`
	UpdatedAt            *time.Time         `json:"updated_at,omitempty"`
	Version              int64              `json:"version"`
}

type vaccineResponse struct {
	ID           string `json:"id"`
	VaccineName  string `json:"vaccine_name"`
	AppliedOn    string `json:"applied_on"`
	NextDoseOn   string `json:"next_dose_on,omitempty"`
	BatchNumber  string `json:"batch_number,omitempty"`
	Veterinarian string `json:"veterinarian,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type dewormerResponse struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	AppliedOn   string  `json:"applied_on"`
	NextDoseOn  string  `json:"next_dose_on,omitempty"`
	Dose        string  `json:"dose,omitempty"`
	WeightKg    float64 `json:"weight_kg,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type reminderResponse struct {
	ID    string       `json:"id"`
	Kind  ReminderKind `json:"kind"`
	Title string       `json:"title"`
	DueOn string       `json:"due_on"`
	Notes string       `json:"notes,omitempty"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Da de alta una mascota. guardian_id, name, birth_date, breed, sex e is_castrated son obligatorios. birth_date en formato YYYY-MM-DD y no posterior a hoy. Si hay directorio de tutores configurado, el tutor debe existir.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / campos obligatorios / birth_date inválida"
// @Failure 409 {string} string "microchip number already registered"
// @Failure 422 {string} string "guardian not found"
// @Failure 502 {string} string "guardian lookup failed"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		in := CreateParams{
			Name:            req.Name,
			Breed:           req.Breed,
			Sex:             Sex(strings.TrimSpace(req.Sex)),
			IsCastrated:     req.IsCastrated,
			MicrochipNumber: normalizeMicrochip(req.MicrochipNumber),
			History:         req.History,
		}
		if g := strings.TrimSpace(req.GuardianID); g != "" {
			id, err := uuid.Parse(g)
			if err != nil {
				http.Error(w, "guardian_id must be a UUID", http.StatusBadRequest)
				return
			}
			in.GuardianID = id
		}
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(DateLayout, req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BirthDate = &t
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p, svc.now()))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items, svc.now()))
	}
}

// listByGuardianHandler godoc
// @Summary Listar mascotas de un tutor
// @Tags pets
// @Produce json
// @Param guardianID path string true "ID del tutor"
// @Success 200 {array} petResponse
// @Failure 404 {string} string "guardian id inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets/guardian/{guardianID} [get]
func listByGuardianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guardianID, err := uuid.Parse(chi.URLParam(r, "guardianID"))
		if err != nil {
			http.Error(w, "guardian not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByGuardian(r.Context(), guardianID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items, svc.now()))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p, svc.now()))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PATCH parcial. breed ausente o vacío se ignora. microchip_number e history: ausente = sin cambios, null = limpiar.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "microchip duplicado / modificación concurrente"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}

		// Decodificamos a map primero para detectar presencia de campos (null = limpiar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updatePetRequest
		fields := map[string]any{
			"breed":            &req.Breed,
			"microchip_number": &req.MicrochipNumber,
			"history":          &req.History,
		}
		for key, dst := range fields {
			v, exists := raw[key]
			if !exists {
				continue
			}
			if err := json.Unmarshal(v, dst); err != nil {
				http.Error(w, fmt.Sprintf("invalid json: %s", key), http.StatusBadRequest)
				return
			}
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		in := UpdateInput{Breed: req.Breed}
		if _, exists := raw["microchip_number"]; exists {
			in.MicrochipNumber = Patch[string]{Present: true, Value: normalizeMicrochip(req.MicrochipNumber)}
		}
		if _, exists := raw["history"]; exists {
			in.History = Patch[string]{Present: true, Value: req.History}
		}

		updated, err := svc.Update(r.Context(), petID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(updated, svc.now()))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Elimina la mascota junto con sus aplicaciones y recordatorios.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), petID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// addVaccineHandler godoc
// @Summary Registrar vacuna
// @Description Agrega una aplicación de vacuna. applied_on (YYYY-MM-DD) no puede ser futura; next_dose_on opcional y no anterior a applied_on.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body vaccineRequest true "Datos de la aplicación"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "modificación concurrente"
// @Router /pets/{petID}/vaccines [post]
func addVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req vaccineRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		applied, err := parseDate("applied_on", req.AppliedOn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next, err := parseOptionalDate("next_dose_on", req.NextDoseOn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.AddVaccineApplication(r.Context(), petID, VaccineInput{
			VaccineName:  req.VaccineName,
			AppliedOn:    applied,
			NextDoseOn:   next,
			BatchNumber:  req.BatchNumber,
			Veterinarian: req.Veterinarian,
			Notes:        req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p, svc.now()))
	}
}

// addDewormerHandler godoc
// @Summary Registrar desparasitación
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body dewormerRequest true "Datos de la aplicación"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "modificación concurrente"
// @Router /pets/{petID}/dewormers [post]
func addDewormerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req dewormerRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		applied, err := parseDate("applied_on", req.AppliedOn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next, err := parseOptionalDate("next_dose_on", req.NextDoseOn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.AddDewormerApplication(r.Context(), petID, DewormerInput{
			ProductName: req.ProductName,
			AppliedOn:   applied,
			NextDoseOn:  next,
			Dose:        req.Dose,
			WeightKg:    req.WeightKg,
			Notes:       req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p, svc.now()))
	}
}

// addReminderHandler godoc
// @Summary Crear recordatorio
// @Description Guarda un recordatorio (no se envían notificaciones). kind por defecto OTHER.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body reminderRequest true "Datos del recordatorio"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "modificación concurrente"
// @Router /pets/{petID}/reminders [post]
func addReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req reminderRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		due, err := parseDate("due_on", req.DueOn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.AddReminder(r.Context(), petID, ReminderInput{
			Kind:  ReminderKind(req.Kind),
			Title: req.Title,
			DueOn: due,
			Notes: req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p, svc.now()))
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func petIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "petID"))
	if err != nil {
		http.Error(w, "pet not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// parseDate: vacío = zero time (el dominio informa el faltante).
func parseDate(field, v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}

func parseOptionalDate(field string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := parseDate(field, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// normalizeMicrochip: "" cuenta como sin microchip, así no choca con el índice único.
func normalizeMicrochip(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrFieldRequired),
		errors.Is(err, ErrBirthDateInFuture),
		errors.Is(err, ErrDateInFuture),
		errors.Is(err, ErrNextDoseBeforeApplication),
		errors.Is(err, ErrInvalidReminderKind),
		errors.Is(err, ErrNegativeWeight):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrMicrochipTaken), errors.Is(err, ErrConcurrentUpdate):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrGuardianNotFound):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrGuardianLookup):
		http.Error(w, "guardian lookup failed", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponses(items []*Pet, now time.Time) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p, now))
	}
	return out
}

func toPetResponse(p *Pet, now time.Time) petResponse {
	resp := petResponse{
		ID:                   p.ID().String(),
		GuardianID:           p.GuardianID().String(),
		Name:                 p.Name(),
		BirthDate:            formatDate(p.BirthDate()),
		AgeInYears:           p.CalculateAgeInYears(now),
		Breed:                p.Breed(),
		Sex:                  p.Sex(),
		IsCastrated:          p.IsCastrated(),
		MicrochipNumber:      p.MicrochipNumber(),
		History:              p.History(),
		VaccineApplications:  make([]vaccineResponse, 0),
		DewormerApplications: make([]dewormerResponse, 0),
		Reminders:            make([]reminderResponse, 0),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
		Version:              p.Version(),
	}

	for _, v := range p.VaccineApplications() {
		resp.VaccineApplications = append(resp.VaccineApplications, vaccineResponse{
			ID:           v.ID.String(),
			VaccineName:  v.VaccineName,
			AppliedOn:    formatDate(v.AppliedOn),
			NextDoseOn:   formatDate(v.NextDoseOn),
			BatchNumber:  v.BatchNumber,
			Veterinarian: v.Veterinarian,
			Notes:        v.Notes,
		})
	}
	for _, d := range p.DewormerApplications() {
		resp.DewormerApplications = append(resp.DewormerApplications, dewormerResponse{
			ID:          d.ID.String(),
			ProductName: d.ProductName,
			AppliedOn:   formatDate(d.AppliedOn),
			NextDoseOn:  formatDate(d.NextDoseOn),
			Dose:        d.Dose,
			WeightKg:    d.WeightKg,
			Notes:       d.Notes,
		})
	}
	for _, rm := range p.Reminders() {
		resp.Reminders = append(resp.Reminders, reminderResponse{
			ID:    rm.ID.String(),
			Kind:  rm.Kind,
			Title: rm.Title,
			DueOn: formatDate(rm.DueOn),
			Notes: rm.Notes,
		})
	}
	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
