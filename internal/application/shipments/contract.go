package shipments

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FieldError es una falla de validación asociada a un campo del payload.
type FieldError struct {
	Field   string
	Message string
}

// Full devuelve el mensaje calificado con el campo, p.ej. "skus must not be empty".
func (e FieldError) Full() string {
	return e.Field + " " + e.Message
}

// SkuInput línea normalizada del payload: id de SKU y cantidad.
type SkuInput struct {
	ID       int64
	Quantity int
}

// CreateShipmentInput es el payload tipado y normalizado tras pasar el contrato.
type CreateShipmentInput struct {
	ShippingCost         decimal.Decimal
	EstimatedArrivalDate *time.Time
	TrackingCode         *string
	ShipmentProviderID   int64
	Skus                 []SkuInput
}

const arrivalDateLayout = "2006-01-02"

// ValidateCreatePayload aplica el contrato de creación sobre el payload crudo
// (mapa JSON sin tipar). Primero corren las reglas de forma/tipo campo por
// campo, luego las reglas de negocio (skus no vacío, fecha no pasada) sobre
// los campos que pasaron la forma. Devuelve el input normalizado o la lista
// ordenada de fallas; sin efectos secundarios y sin tocar la base de datos.
//
// today es la fecha del servidor al procesar la petición (ver Clock); se evalúa
// una sola vez para toda la validación.
func ValidateCreatePayload(payload map[string]any, today time.Time) (*CreateShipmentInput, []FieldError) {
	var errs []FieldError
	input := &CreateShipmentInput{}

	// shipping_cost: requerido, decimal
	if raw, ok := payload["shipping_cost"]; !ok {
		errs = append(errs, FieldError{"shipping_cost", "is missing"})
	} else if cost, ok := asDecimal(raw); !ok {
		errs = append(errs, FieldError{"shipping_cost", "must be a decimal"})
	} else {
		input.ShippingCost = cost
	}

	// estimated_arrival_date: opcional; si la clave viene (aunque sea null)
	// debe parsear como fecha calendario
	arrivalOK := false
	if raw, present := payload["estimated_arrival_date"]; present {
		s, isString := raw.(string)
		if !isString {
			errs = append(errs, FieldError{"estimated_arrival_date", "must be a date"})
		} else if parsed, err := time.ParseInLocation(arrivalDateLayout, s, time.UTC); err != nil {
			errs = append(errs, FieldError{"estimated_arrival_date", "must be a date"})
		} else {
			input.EstimatedArrivalDate = &parsed
			arrivalOK = true
		}
	}

	// tracking_code: opcional, string libre; null explícito no cuenta como ausente
	if raw, present := payload["tracking_code"]; present {
		if s, ok := raw.(string); ok {
			input.TrackingCode = &s
		} else {
			errs = append(errs, FieldError{"tracking_code", "must be a string"})
		}
	}

	// shipper.shipment_provider_id: requerido, entero
	if raw, ok := payload["shipper"]; !ok {
		errs = append(errs, FieldError{"shipper", "is missing"})
	} else if shipper, ok := raw.(map[string]any); !ok {
		errs = append(errs, FieldError{"shipper", "must be a hash"})
	} else if rawID, ok := shipper["shipment_provider_id"]; !ok {
		errs = append(errs, FieldError{"shipper.shipment_provider_id", "is missing"})
	} else if id, ok := asInt(rawID); !ok {
		errs = append(errs, FieldError{"shipper.shipment_provider_id", "must be an integer"})
	} else {
		input.ShipmentProviderID = id
	}

	// skus: requerido, arreglo de {id, quantity}
	skusOK := false
	if raw, ok := payload["skus"]; !ok {
		errs = append(errs, FieldError{"skus", "is missing"})
	} else if list, ok := raw.([]any); !ok {
		errs = append(errs, FieldError{"skus", "must be an array"})
	} else {
		skusOK = true
		input.Skus = make([]SkuInput, 0, len(list))
		for i, rawEntry := range list {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				errs = append(errs, FieldError{skuField(i, ""), "must be a hash"})
				skusOK = false
				continue
			}
			var line SkuInput
			lineOK := true
			if rawID, ok := entry["id"]; !ok {
				errs = append(errs, FieldError{skuField(i, "id"), "is missing"})
				lineOK = false
			} else if id, ok := asInt(rawID); !ok {
				errs = append(errs, FieldError{skuField(i, "id"), "must be an integer"})
				lineOK = false
			} else {
				line.ID = id
			}
			if rawQty, ok := entry["quantity"]; !ok {
				errs = append(errs, FieldError{skuField(i, "quantity"), "is missing"})
				lineOK = false
			} else if qty, ok := asInt(rawQty); !ok {
				errs = append(errs, FieldError{skuField(i, "quantity"), "must be an integer"})
				lineOK = false
			} else {
				line.Quantity = int(qty)
			}
			if lineOK {
				input.Skus = append(input.Skus, line)
			} else {
				skusOK = false
			}
		}
	}

	// Reglas de negocio: corren solo sobre campos que pasaron la forma.
	if skusOK && len(input.Skus) == 0 {
		errs = append(errs, FieldError{"skus", "must not be empty"})
	}
	if arrivalOK && input.EstimatedArrivalDate.Before(dateOnly(today)) {
		errs = append(errs, FieldError{"estimated_arrival_date", "must not be in the past"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}

func skuField(index int, key string) string {
	field := "skus[" + strconv.Itoa(index) + "]"
	if key != "" {
		field += "." + key
	}
	return field
}

// dateOnly trunca un instante a su fecha calendario en UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// asDecimal acepta números JSON (json.Number o float64) y enteros de Go
// (payloads construidos en tests). Strings no cuentan como decimal.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Decimal{}, false
}

// asInt acepta json.Number sin parte fraccionaria y enteros de Go (payloads
// construidos en tests). float64 se rechaza siempre: un "1.0" del cliente no
// es un entero.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
