package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/finverse-labs/cardinfo-service/internal/application"
)

// Unavailable is the sentinel for issuer fields the upstream did not supply.
// Missing sub-fields are defaulted individually, never omitted.
const Unavailable = "unavailable"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ExampleRoute is the usage hint returned for unknown paths.
const ExampleRoute = "/cardinfo/457173/4571736000000000/12/28"

type Metadata struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Description string `json:"description"`
	DataSource  string `json:"data_source"`
}

// ServiceMetadata identifies the service in every card-info response. It is
// a fixed value, never mutated per request.
var ServiceMetadata = Metadata{
	Service:     "cardinfo-service",
	Version:     "1.0.0",
	Description: "validates card numbers and enriches them with issuer metadata",
	DataSource:  "binlist",
}

type RequestEcho struct {
	BIN         string `json:"bin"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

type ValidationBody struct {
	LuhnValid   bool `json:"luhn_valid"`
	ExpiryValid bool `json:"expiry_valid"`
}

type NumberDetails struct {
	Length          string `json:"length"`
	LuhnCheckStatus string `json:"luhn_check_status"`
}

type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type CountryBody struct {
	Name        string      `json:"name"`
	Alpha2      string      `json:"alpha2"`
	Numeric     string      `json:"numeric"`
	Currency    string      `json:"currency"`
	Emoji       string      `json:"emoji"`
	Coordinates Coordinates `json:"coordinates"`
}

type BankBody struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	PhoneSAC string `json:"phone_sac"`
	City     string `json:"city"`
}

type CardInfoBody struct {
	Scheme        string        `json:"scheme"`
	Brand         string        `json:"brand"`
	Type          string        `json:"type"`
	Prepaid       string        `json:"prepaid"`
	NumberDetails NumberDetails `json:"number_details"`
	Country       CountryBody   `json:"country"`
	Bank          BankBody      `json:"bank"`
}

type CardInfoResponse struct {
	Metadata   Metadata       `json:"metadata"`
	Request    RequestEcho    `json:"request"`
	Validation ValidationBody `json:"validation"`
	CardInfo   *CardInfoBody  `json:"card_info"`
	Status     string         `json:"status"`
	Message    string         `json:"message"`
}

// RouteNotFoundResponse is the only body without the metadata/request
// wrapper; it answers every path that is not the card-info route.
type RouteNotFoundResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Example string `json:"example"`
}

func ToRequestEcho(q application.CardQuery) RequestEcho {
	return RequestEcho{
		BIN:         q.BIN,
		CardNumber:  q.CardNumber,
		ExpiryMonth: q.ExpiryMonth,
		ExpiryYear:  q.ExpiryYear,
	}
}

func ToValidationBody(v application.ValidationResult) ValidationBody {
	return ValidationBody{
		LuhnValid:   v.LuhnValid,
		ExpiryValid: v.ExpiryValid,
	}
}

// ToCardInfoBody normalizes the upstream record, substituting the sentinel
// for each absent field independently.
func ToCardInfoBody(r *application.BinRecord) *CardInfoBody {
	if r == nil {
		return nil
	}

	body := &CardInfoBody{
		Scheme:  orString(r.Scheme),
		Brand:   orString(r.Brand),
		Type:    orString(r.Type),
		Prepaid: orBool(r.Prepaid),
		NumberDetails: NumberDetails{
			Length:          Unavailable,
			LuhnCheckStatus: Unavailable,
		},
		Country: CountryBody{
			Name:     Unavailable,
			Alpha2:   Unavailable,
			Numeric:  Unavailable,
			Currency: Unavailable,
			Emoji:    Unavailable,
			Coordinates: Coordinates{
				Latitude:  Unavailable,
				Longitude: Unavailable,
			},
		},
		Bank: BankBody{
			Name:     Unavailable,
			URL:      Unavailable,
			PhoneSAC: Unavailable,
			City:     Unavailable,
		},
	}

	if r.Number != nil {
		body.NumberDetails.Length = orInt(r.Number.Length)
		body.NumberDetails.LuhnCheckStatus = luhnStatus(r.Number.Luhn)
	}
	if r.Country != nil {
		body.Country.Name = orString(r.Country.Name)
		body.Country.Alpha2 = orString(r.Country.Alpha2)
		body.Country.Numeric = orString(r.Country.Numeric)
		body.Country.Currency = orString(r.Country.Currency)
		body.Country.Emoji = orString(r.Country.Emoji)
		body.Country.Coordinates.Latitude = orFloat(r.Country.Latitude)
		body.Country.Coordinates.Longitude = orFloat(r.Country.Longitude)
	}
	if r.Bank != nil {
		body.Bank.Name = orString(r.Bank.Name)
		body.Bank.URL = orString(r.Bank.URL)
		body.Bank.PhoneSAC = orString(r.Bank.Phone)
		body.Bank.City = orString(r.Bank.City)
	}

	return body
}

func orString(v *string) string {
	if v == nil || *v == "" {
		return Unavailable
	}
	return *v
}

func orBool(v *bool) string {
	if v == nil {
		return Unavailable
	}
	return strconv.FormatBool(*v)
}

func orInt(v *int) string {
	if v == nil {
		return Unavailable
	}
	return strconv.Itoa(*v)
}

func orFloat(v *float64) string {
	if v == nil {
		return Unavailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func luhnStatus(v *bool) string {
	if v == nil {
		return Unavailable
	}
	if *v {
		return "valid"
	}
	return "invalid"
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteRouteNotFound(w http.ResponseWriter) {
	WriteJSON(w, http.StatusNotFound, RouteNotFoundResponse{
		Status:  StatusError,
		Message: "unknown route; use /cardinfo/{bin}/{cardNumber}/{expiryMonth}/{expiryYear}",
		Example: ExampleRoute,
	})
}
