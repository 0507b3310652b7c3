package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vet-clinic-backend/internal/router"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

type petBody struct {
	ID                  string  `json:"id"`
	GuardianID          string  `json:"guardian_id"`
	Name                string  `json:"name"`
	BirthDate           string  `json:"birth_date"`
	AgeInYears          int     `json:"age_in_years"`
	Breed               string  `json:"breed"`
	Sex                 string  `json:"sex"`
	MicrochipNumber     *string `json:"microchip_number"`
	History             *string `json:"history"`
	Version             int64   `json:"version"`
	VaccineApplications []struct {
		VaccineName string `json:"vaccine_name"`
		AppliedOn   string `json:"applied_on"`
		NextDoseOn  string `json:"next_dose_on"`
	} `json:"vaccine_applications"`
	DewormerApplications []struct {
		ProductName string `json:"product_name"`
	} `json:"dewormer_applications"`
	Reminders []struct {
		Kind  string `json:"kind"`
		Title string `json:"title"`
	} `json:"reminders"`
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := newTestServer(t, router.Options{})
	guardianID := uuid.NewString()

	// 1) Alta
	rex := createPet(t, ts.URL, map[string]any{
		"guardian_id":      guardianID,
		"name":             "Rex",
		"birth_date":       "2023-05-01",
		"breed":            "Labrador",
		"sex":              "MALE",
		"is_castrated":     false,
		"microchip_number": "985112000000001",
	})
	if rex.AgeInYears != 1 {
		t.Fatalf("expected age 1, got %d", rex.AgeInYears)
	}
	if rex.GuardianID != guardianID {
		t.Fatalf("expected guardian %s, got %s", guardianID, rex.GuardianID)
	}

	// 2) Consulta
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets/"+rex.ID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
	}

	// 3) PATCH: breed vacío se ignora, history se setea
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/pets/"+rex.ID, map[string]any{
			"breed":   "",
			"history": "control anual ok",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		p := decodePet(t, body)
		if p.Breed != "Labrador" {
			t.Fatalf("expected breed unchanged, got %q", p.Breed)
		}
		if p.History == nil || *p.History != "control anual ok" {
			t.Fatalf("expected history set, got %v", p.History)
		}
		if p.MicrochipNumber == nil {
			t.Fatalf("expected microchip untouched when absent")
		}
		if p.Version != 1 {
			t.Fatalf("expected version 1 after update, got %d", p.Version)
		}
	}

	// 4) PATCH: microchip null = limpiar
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/pets/"+rex.ID, map[string]any{
			"breed":            "Golden",
			"microchip_number": nil,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		p := decodePet(t, body)
		if p.Breed != "Golden" || p.MicrochipNumber != nil {
			t.Fatalf("expected breed Golden and microchip cleared, got %q %v", p.Breed, p.MicrochipNumber)
		}
	}

	// 5) Vacuna, desparasitación y recordatorio
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pets/"+rex.ID+"/vaccines", map[string]any{
			"vaccine_name": "Rabia",
			"applied_on":   "2024-04-20",
			"next_dose_on": "2025-04-20",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add vaccine, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pets/"+rex.ID+"/dewormers", map[string]any{
			"product_name": "Bravecto",
			"applied_on":   "2024-04-25",
			"weight_kg":    28.5,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add dewormer, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pets/"+rex.ID+"/reminders", map[string]any{
			"kind":   "VACCINE",
			"title":  "Refuerzo rabia",
			"due_on": "2025-04-20",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add reminder, got %d body=%s", st, string(body))
		}
		p := decodePet(t, body)
		if len(p.VaccineApplications) != 1 || len(p.DewormerApplications) != 1 || len(p.Reminders) != 1 {
			t.Fatalf("expected one of each child, got body=%s", string(body))
		}
		if p.VaccineApplications[0].NextDoseOn != "2025-04-20" {
			t.Fatalf("expected next dose 2025-04-20, got %q", p.VaccineApplications[0].NextDoseOn)
		}
	}

	// 6) Listados
	other := createPet(t, ts.URL, map[string]any{
		"guardian_id":  uuid.NewString(),
		"name":         "Luna",
		"birth_date":   "2020-01-10",
		"breed":        "Siamés",
		"sex":          "FEMALE",
		"is_castrated": true,
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var all []petBody
		_ = json.Unmarshal(body, &all)
		if len(all) != 2 {
			t.Fatalf("expected 2 pets, got %d", len(all))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets/guardian/"+guardianID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list by guardian, got %d", st)
		}
		var mine []petBody
		_ = json.Unmarshal(body, &mine)
		if len(mine) != 1 || mine[0].ID != rex.ID {
			t.Fatalf("expected only Rex for guardian, got body=%s", string(body))
		}
	}

	// 7) Baja
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/pets/"+other.ID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+other.ID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreatePet_Errors(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	valid := func() map[string]any {
		return map[string]any{
			"guardian_id":  uuid.NewString(),
			"name":         "Rex",
			"birth_date":   "2023-05-01",
			"breed":        "Labrador",
			"sex":          "MALE",
			"is_castrated": false,
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"missing_breed", func(m map[string]any) { delete(m, "breed") }, http.StatusBadRequest},
		{"blank_breed", func(m map[string]any) { m["breed"] = "  " }, http.StatusBadRequest},
		{"missing_is_castrated", func(m map[string]any) { delete(m, "is_castrated") }, http.StatusBadRequest},
		{"birth_date_tomorrow", func(m map[string]any) { m["birth_date"] = "2024-05-02" }, http.StatusBadRequest},
		{"birth_date_bad_format", func(m map[string]any) { m["birth_date"] = "01/05/2023" }, http.StatusBadRequest},
		{"invalid_sex", func(m map[string]any) { m["sex"] = "UNKNOWN" }, http.StatusBadRequest},
		{"invalid_guardian", func(m map[string]any) { m["guardian_id"] = "nope" }, http.StatusBadRequest},
		{"name_too_long", func(m map[string]any) { m["name"] = strings.Repeat("x", 101) }, http.StatusBadRequest},
		{"unknown_field", func(m map[string]any) { m["species"] = "dog" }, http.StatusBadRequest},
		{"birth_date_today", func(m map[string]any) { m["birth_date"] = "2024-05-01" }, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid()
			tt.mutate(payload)
			st, body := doReq(t, ts.URL, "POST", "/api/pets", payload)
			if st != tt.want {
				t.Fatalf("expected %d, got %d body=%s", tt.want, st, string(body))
			}
		})
	}
}

func TestHTTP_CreatePet_UppercaseGuardianID(t *testing.T) {
	ts := newTestServer(t, router.Options{})
	guardianID := uuid.NewString()

	p := createPet(t, ts.URL, map[string]any{
		"guardian_id":  strings.ToUpper(guardianID),
		"name":         "Luna",
		"birth_date":   "2022-01-10",
		"breed":        "Siamés",
		"sex":          "FEMALE",
		"is_castrated": true,
	})
	if p.GuardianID != guardianID {
		t.Fatalf("expected guardian %s, got %s", guardianID, p.GuardianID)
	}

	st, body := doReq(t, ts.URL, "GET", "/api/pets/guardian/"+strings.ToUpper(guardianID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list by guardian, got %d body=%s", st, string(body))
	}
	var list []petBody
	if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 {
		t.Fatalf("expected 1 pet for guardian, err=%v body=%s", err, string(body))
	}
}

func TestHTTP_PatchWithoutChanges_KeepsVersion(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	p := createPet(t, ts.URL, map[string]any{
		"guardian_id":      uuid.NewString(),
		"name":             "Rex",
		"birth_date":       "2023-05-01",
		"breed":            "Labrador",
		"sex":              "MALE",
		"is_castrated":     false,
		"microchip_number": "CHIP-77",
	})

	bodies := []any{
		map[string]any{},
		json.RawMessage("null"),
		map[string]any{"breed": "  "},
		map[string]any{"breed": "Labrador", "microchip_number": "CHIP-77"},
	}
	for i, b := range bodies {
		st, body := doReq(t, ts.URL, "PATCH", "/api/pets/"+p.ID, b)
		if st != http.StatusOK {
			t.Fatalf("patch %d: expected 200, got %d body=%s", i, st, string(body))
		}
		if got := decodePet(t, body); got.Version != 0 {
			t.Fatalf("patch %d: expected version 0, got %d", i, got.Version)
		}
	}

	st, body := doReq(t, ts.URL, "PATCH", "/api/pets/"+p.ID, map[string]any{"breed": "Beagle"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
	}
	if got := decodePet(t, body); got.Version != 1 || got.Breed != "Beagle" {
		t.Fatalf("expected Beagle at version 1, got %s at %d", got.Breed, got.Version)
	}
}

func TestHTTP_PatchBadFieldType(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	p := createPet(t, ts.URL, map[string]any{
		"guardian_id":  uuid.NewString(),
		"name":         "Rex",
		"birth_date":   "2023-05-01",
		"breed":        "Labrador",
		"sex":          "MALE",
		"is_castrated": false,
	})

	st, body := doReq(t, ts.URL, "PATCH", "/api/pets/"+p.ID, map[string]any{"breed": 5})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "breed") {
		t.Fatalf("expected 400 mentioning breed, got %d body=%s", st, string(body))
	}
}

func TestHTTP_MicrochipConflict(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	payload := map[string]any{
		"guardian_id":      uuid.NewString(),
		"name":             "Rex",
		"birth_date":       "2023-05-01",
		"breed":            "Labrador",
		"sex":              "MALE",
		"is_castrated":     false,
		"microchip_number": "CHIP-1",
	}
	createPet(t, ts.URL, payload)

	st, body := doReq(t, ts.URL, "POST", "/api/pets", payload)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicated microchip, got %d body=%s", st, string(body))
	}

	// "" no cuenta como microchip: no choca.
	payload["microchip_number"] = ""
	createPet(t, ts.URL, payload)
	createPet(t, ts.URL, payload)
}

func TestHTTP_NotFoundAndInvalidIDs(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	for _, path := range []string{
		"/api/pets/" + uuid.NewString(),
		"/api/pets/not-a-uuid",
		"/api/pets/guardian/not-a-uuid",
	} {
		st, _ := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, st)
		}
	}

	st, _ := doReq(t, ts.URL, "POST", "/api/pets/"+uuid.NewString()+"/reminders", map[string]any{
		"title":  "Control",
		"due_on": "2024-06-01",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 adding reminder to unknown pet, got %d", st)
	}
}

func TestHTTP_ChildValidation(t *testing.T) {
	ts := newTestServer(t, router.Options{})
	p := createPet(t, ts.URL, map[string]any{
		"guardian_id":  uuid.NewString(),
		"name":         "Rex",
		"birth_date":   "2023-05-01",
		"breed":        "Labrador",
		"sex":          "MALE",
		"is_castrated": false,
	})

	cases := []struct {
		path    string
		payload map[string]any
	}{
		{"/vaccines", map[string]any{"vaccine_name": "Rabia", "applied_on": "2024-05-02"}},
		{"/vaccines", map[string]any{"vaccine_name": "Rabia", "applied_on": "2024-04-01", "next_dose_on": "2024-03-01"}},
		{"/vaccines", map[string]any{"applied_on": "2024-04-01"}},
		{"/dewormers", map[string]any{"product_name": "Bravecto", "applied_on": "2024-04-01", "weight_kg": -3}},
		{"/reminders", map[string]any{"kind": "BATH", "title": "Baño", "due_on": "2024-06-01"}},
		{"/reminders", map[string]any{"title": "Control", "due_on": "mañana"}},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, "POST", "/api/pets/"+p.ID+c.path, c.payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s %v, got %d body=%s", c.path, c.payload, st, string(body))
		}
	}
}

func TestHTTP_RateLimit(t *testing.T) {
	ts := newTestServer(t, router.Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	st, _ := doReq(t, ts.URL, "GET", "/api/pets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 first request, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/pets", nil)
	if st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 second request, got %d", st)
	}

	// health y metrics quedan fuera del límite
	st, _ = doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_HealthMetricsSwagger(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	_, _ = doReq(t, ts.URL, "GET", "/api/pets", nil)
	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), `vet_clinic_http_requests_total{method="GET",route="/api/pets`) {
		t.Fatalf("expected request counter in metrics, body=%s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"/pets/{petID}/vaccines"`) {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func createPet(t *testing.T, baseURL string, payload map[string]any) petBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	p := decodePet(t, body)
	if p.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return p
}

func decodePet(t *testing.T, body []byte) petBody {
	t.Helper()

	var p petBody
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode pet: %v body=%s", err, string(body))
	}
	return p
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
