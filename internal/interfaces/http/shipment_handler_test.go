package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restock-api/internal/application/merchants"
	"github.com/jhoicas/restock-api/internal/application/shipments"
	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
	apphttp "github.com/jhoicas/restock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repos en memoria con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	merchants      map[string]entity.Merchant // key: userID
	providers      map[int64]entity.ShipmentProvider
	skus           map[int64]entity.Sku
	shipments      map[int64]entity.RestockingShipment
	items          map[int64]entity.RestockingShipmentItem
	nextShipmentID int64
	nextItemID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		merchants: map[string]entity.Merchant{},
		providers: map[int64]entity.ShipmentProvider{},
		skus:      map[int64]entity.Sku{},
		shipments: map[int64]entity.RestockingShipment{},
		items:     map[int64]entity.RestockingShipmentItem{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.merchants {
		c.merchants[k] = v
	}
	for k, v := range s.providers {
		c.providers[k] = v
	}
	for k, v := range s.skus {
		c.skus[k] = v
	}
	for k, v := range s.shipments {
		c.shipments[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.nextShipmentID = s.nextShipmentID
	c.nextItemID = s.nextItemID
	return c
}

type fakeMerchantRepo struct{ s *fakeStore }

func (r *fakeMerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	for _, m := range r.s.merchants {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMerchantRepo) GetByUserID(userID string) (*entity.Merchant, error) {
	m, ok := r.s.merchants[userID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

type fakeShipmentRepo struct{ s *fakeStore }

func (r *fakeShipmentRepo) Create(sh *entity.RestockingShipment) error {
	r.s.nextShipmentID++
	sh.ID = r.s.nextShipmentID
	r.s.shipments[sh.ID] = *sh
	return nil
}

func (r *fakeShipmentRepo) CreateItem(it *entity.RestockingShipmentItem) error {
	r.s.nextItemID++
	it.ID = r.s.nextItemID
	r.s.items[it.ID] = *it
	return nil
}

func (r *fakeShipmentRepo) GetByIDAndMerchant(id int64, merchantID string) (*entity.RestockingShipment, error) {
	sh, ok := r.s.shipments[id]
	if !ok || sh.MerchantID != merchantID {
		return nil, nil
	}
	var ids []int64
	for itemID, it := range r.s.items {
		if it.RestockingShipmentID == id {
			ids = append(ids, itemID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	sh.Items = nil
	for _, itemID := range ids {
		sh.Items = append(sh.Items, r.s.items[itemID])
	}
	return &sh, nil
}

type fakeProviderRepo struct{ s *fakeStore }

func (r *fakeProviderRepo) Create(p *entity.ShipmentProvider) error {
	r.s.providers[p.ID] = *p
	return nil
}

func (r *fakeProviderRepo) GetByID(id int64) (*entity.ShipmentProvider, error) {
	p, ok := r.s.providers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeSkuRepo struct{ s *fakeStore }

func (r *fakeSkuRepo) Create(sku *entity.Sku) error {
	r.s.skus[sku.ID] = *sku
	return nil
}

func (r *fakeSkuRepo) GetByID(id int64) (*entity.Sku, error) {
	sku, ok := r.s.skus[id]
	if !ok {
		return nil, nil
	}
	return &sku, nil
}

// fakeTxRunner publica los cambios solo si el callback retorna nil.
type fakeTxRunner struct{ store *fakeStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	shipmentRepo repository.RestockingShipmentRepository,
	providerRepo repository.ShipmentProviderRepository,
	skuRepo repository.SkuRepository,
) error) error {
	work := tr.store.clone()
	if err := fn(&fakeShipmentRepo{work}, &fakeProviderRepo{work}, &fakeSkuRepo{work}); err != nil {
		return err
	}
	*tr.store = *work
	return nil
}

type stubClock struct{ today time.Time }

func (c stubClock) Today() time.Time { return c.today }

// ──────────────────────────────────────────────────────────────────────────────
// Armado común
// ──────────────────────────────────────────────────────────────────────────────

const (
	testMerchantID = "00000000-0000-0000-0000-0000000000aa"
	// Usuario autenticado que aún no configuró su comerciante.
	testUserSinMerchant = "00000000-0000-0000-0000-000000000099"
)

var stubToday = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

// seedFakeStore proveedor 1 "DHL", SKU 10 "Camiseta" y el merchant de testUserID.
func seedFakeStore() *fakeStore {
	store := newFakeStore()
	store.merchants[testUserID] = entity.Merchant{ID: testMerchantID, Name: "Tienda Test"}
	store.providers[1] = entity.ShipmentProvider{ID: 1, Name: "DHL"}
	store.skus[10] = entity.Sku{ID: 10, Name: "Camiseta"}
	return store
}

// buildShipmentApp app Fiber con las rutas protegidas reales sobre el store dado.
func buildShipmentApp(store *fakeStore) *fiber.App {
	merchantUC := merchants.NewFetchUserMerchantUseCase(&fakeMerchantRepo{store})
	createUC := shipments.NewCreateShipmentUseCase(&fakeTxRunner{store}, stubClock{stubToday})
	fetchUC := shipments.NewFetchShipmentUseCase(
		&fakeShipmentRepo{store}, &fakeProviderRepo{store}, &fakeSkuRepo{store})

	app := fiber.New()
	handler := apphttp.NewShipmentHandler(merchantUC, createUC, fetchUC)
	user := app.Group("/api/v1/user", apphttp.AuthMiddleware(testJWTSecret))
	user.Post("/restocking_shipments", handler.Create)
	user.Get("/restocking_shipments/:id", handler.Show)
	return app
}

const validCreateBody = `{
	"shipping_cost": 12.99,
	"estimated_arrival_date": "2026-08-30",
	"tracking_code": "YY",
	"shipper": {"shipment_provider_id": 1},
	"skus": [{"id": 10, "quantity": 11}]
}`

// envelope sobre genérico de la API: success + payload o errors.
type envelope struct {
	Success bool            `json:"success"`
	Payload json.RawMessage `json:"payload"`
	Errors  []string        `json:"errors"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/v1/user/restocking_shipments
// ──────────────────────────────────────────────────────────────────────────────

func TestShipmentHandler_Create_CaminoFeliz(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, env := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserID), validCreateBody)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	require.Empty(t, env.Errors)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, float64(1), payload["id"])
	assert.Nil(t, payload["status"], "status debe serializarse como null")
	assert.Equal(t, 12.99, payload["shipping_cost"],
		"shipping_cost debe viajar como número JSON, no como string")
	assert.Equal(t, float64(1), payload["sku_count"])
	assert.Equal(t, float64(11), payload["total_count"])

	items, ok := payload["restocking_shipment_items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(11), item["quantity"])
	sku := item["sku"].(map[string]any)
	assert.Equal(t, float64(10), sku["id"])
	assert.Equal(t, "Camiseta", sku["name"])

	provider, ok := payload["shipment_provider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DHL", provider["name"])
}

func TestShipmentHandler_Create_SinMerchant_Retorna422(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, env := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserSinMerchant), validCreateBody)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"configure merchant"}, env.Errors)
}

func TestShipmentHandler_Create_SkusVacio_Retorna422(t *testing.T) {
	store := seedFakeStore()
	app := buildShipmentApp(store)

	body := `{
		"shipping_cost": 12.99,
		"shipper": {"shipment_provider_id": 1},
		"skus": []
	}`
	status, env := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserID), body)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"Validation failed: skus must not be empty"}, env.Errors)
	assert.Empty(t, store.shipments)
}

func TestShipmentHandler_Create_ProveedorInexistente_Retorna422(t *testing.T) {
	store := seedFakeStore()
	app := buildShipmentApp(store)

	body := `{
		"shipping_cost": 5,
		"shipper": {"shipment_provider_id": 999},
		"skus": [{"id": 10, "quantity": 1}]
	}`
	status, env := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserID), body)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, []string{"Validation failed: Shipment provider must exist"}, env.Errors)
	assert.Empty(t, store.shipments, "la transacción debe revertirse completa")
	assert.Empty(t, store.items)
}

func TestShipmentHandler_Create_CuerpoMalformado_Retorna400(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, env := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserID), `{"shipping_cost": `)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"malformed JSON body"}, env.Errors)
}

func TestShipmentHandler_Create_SinToken_Retorna401(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/user/restocking_shipments", strings.NewReader(validCreateBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/v1/user/restocking_shipments/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestShipmentHandler_Show_DevuelveAgregadoCreado(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, _ := doJSON(t, app, http.MethodPost,
		"/api/v1/user/restocking_shipments", tokenFor(t, testUserID), validCreateBody)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodGet,
		"/api/v1/user/restocking_shipments/1", tokenFor(t, testUserID), "")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, float64(1), payload["id"])
	assert.Equal(t, 12.99, payload["shipping_cost"])
	assert.Equal(t, float64(11), payload["total_count"])
}

func TestShipmentHandler_Show_IDInexistente_Retorna404(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, env := doJSON(t, app, http.MethodGet,
		"/api/v1/user/restocking_shipments/404", tokenFor(t, testUserID), "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t,
		[]string{"restocking shipment for merchant " + testMerchantID + " does not exist"},
		env.Errors)
}

// id no numérico se trata como inexistente, mismo 404 que un id desconocido.
func TestShipmentHandler_Show_IDNoNumerico_Retorna404(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, _ := doJSON(t, app, http.MethodGet,
		"/api/v1/user/restocking_shipments/abc", tokenFor(t, testUserID), "")

	assert.Equal(t, http.StatusNotFound, status)
}

func TestShipmentHandler_Show_SinMerchant_Retorna422(t *testing.T) {
	app := buildShipmentApp(seedFakeStore())

	status, env := doJSON(t, app, http.MethodGet,
		"/api/v1/user/restocking_shipments/1", tokenFor(t, testUserSinMerchant), "")

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, []string{"configure merchant"}, env.Errors)
}
