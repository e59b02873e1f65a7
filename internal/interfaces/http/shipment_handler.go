package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restock-api/internal/application/merchants"
	"github.com/jhoicas/restock-api/internal/application/shipments"
	"github.com/jhoicas/restock-api/internal/domain"
	"github.com/jhoicas/restock-api/internal/domain/entity"
)

// ShipmentHandler maneja las peticiones de envíos de reabastecimiento (protegido).
// Toda operación resuelve primero el comerciante del usuario autenticado; sin
// comerciante configurado la petición falla antes de tocar el caso de uso.
type ShipmentHandler struct {
	merchantUC *merchants.FetchUserMerchantUseCase
	createUC   *shipments.CreateShipmentUseCase
	fetchUC    *shipments.FetchShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(
	merchantUC *merchants.FetchUserMerchantUseCase,
	createUC *shipments.CreateShipmentUseCase,
	fetchUC *shipments.FetchShipmentUseCase,
) *ShipmentHandler {
	return &ShipmentHandler{merchantUC: merchantUC, createUC: createUC, fetchUC: fetchUC}
}

// Create godoc
// @Summary      Crear envío de reabastecimiento
// @Tags         restocking_shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]any  true  "shipping_cost, estimated_arrival_date, tracking_code, shipper{shipment_provider_id}, skus[{id, quantity}]"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      422   {object}  dto.FailResponse
// @Router       /api/v1/user/restocking_shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	merchant, errResp := h.resolveMerchant(c)
	if errResp != nil {
		return errResp(c)
	}

	payload, err := parseRawBody(c.Body())
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed JSON body")
	}

	resp, err := h.createUC.Create(c.Context(), merchant, payload)
	if err != nil {
		var vErr *shipments.ValidationError
		if errors.As(err, &vErr) {
			return fail(c, fiber.StatusUnprocessableEntity, vErr.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return success(c, resp)
}

// Show godoc
// @Summary      Obtener envío de reabastecimiento por ID
// @Tags         restocking_shipments
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.FailResponse
// @Router       /api/v1/user/restocking_shipments/{id} [get]
func (h *ShipmentHandler) Show(c *fiber.Ctx) error {
	merchant, errResp := h.resolveMerchant(c)
	if errResp != nil {
		return errResp(c)
	}

	// id no numérico se trata como inexistente, no como error de formato.
	id, _ := c.ParamsInt("id")

	resp, err := h.fetchUC.Fetch(int64(id), merchant)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	if resp == nil {
		return fail(c, fiber.StatusNotFound,
			fmt.Sprintf("restocking shipment for merchant %s does not exist", merchant.ID))
	}
	return success(c, resp)
}

// resolveMerchant aplica la precondición de comerciante configurado. Devuelve
// el merchant o una función de respuesta ya resuelta (422 "configure merchant").
func (h *ShipmentHandler) resolveMerchant(c *fiber.Ctx) (*entity.Merchant, func(*fiber.Ctx) error) {
	userID := GetUserID(c)
	if userID == "" {
		return nil, func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusUnauthorized, "unauthorized")
		}
	}
	m, err := h.merchantUC.Fetch(userID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotConfigured) {
			return nil, func(c *fiber.Ctx) error {
				return fail(c, fiber.StatusUnprocessableEntity, "configure merchant")
			}
		}
		return nil, func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return m, nil
}

// parseRawBody decodifica el cuerpo JSON a un mapa sin tipar. UseNumber
// preserva la distinción entero/decimal para el contrato de validación.
func parseRawBody(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
