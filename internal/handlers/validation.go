package handlers

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"aggregator/internal/aggregation"
	"aggregator/internal/models"
	"aggregator/internal/services"
	"aggregator/internal/validator"
)

var errInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC3339")

type registerRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	PIN     string `json:"pin"`
	Email   string `json:"email"`
	PAN     string `json:"pan"`
	DOB     string `json:"dob"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (req registerRequest) toService(now time.Time) (services.RegisterRequest, error) {
	out := services.RegisterRequest{
		Name:    strings.TrimSpace(req.Name),
		Mobile:  strings.TrimSpace(req.Mobile),
		PIN:     req.PIN,
		Email:   strings.TrimSpace(req.Email),
		PAN:     strings.ToUpper(strings.TrimSpace(req.PAN)),
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	}
	if err := validator.ValidateName(out.Name); err != nil {
		return out, err
	}
	if err := validator.ValidateMobile(out.Mobile); err != nil {
		return out, err
	}
	if err := validator.ValidatePIN(out.PIN); err != nil {
		return out, err
	}
	if out.Email != "" {
		if err := validator.ValidateEmail(out.Email); err != nil {
			return out, err
		}
	}
	if out.PAN != "" {
		if err := validator.ValidatePAN(out.PAN); err != nil {
			return out, err
		}
	}
	if out.Pincode != "" {
		if err := validator.ValidatePincode(out.Pincode); err != nil {
			return out, err
		}
	}
	if req.DOB != "" {
		dob, err := validator.ParseDOB(req.DOB, now)
		if err != nil {
			return out, err
		}
		out.DOB = dob
	}
	return out, nil
}

type profileForm struct {
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	PAN              string                 `json:"pan"`
	DOB              string                 `json:"dob"`
	Address          string                 `json:"address"`
	City             string                 `json:"city"`
	State            string                 `json:"state"`
	Pincode          string                 `json:"pincode"`
	Dependents       []models.Dependent     `json:"dependents"`
	CreditCards      []models.HeldCard      `json:"credit_cards"`
	PreciousMetals   *models.PreciousMetals `json:"precious_metals"`
	FinancialPersona string                 `json:"financial_persona"`
	UserPersona      string                 `json:"user_persona"`
}

func (form profileForm) toUpdate(now time.Time) (services.ProfileUpdate, error) {
	out := services.ProfileUpdate{
		Name:             strings.TrimSpace(form.Name),
		Email:            strings.TrimSpace(form.Email),
		PAN:              strings.ToUpper(strings.TrimSpace(form.PAN)),
		Address:          form.Address,
		City:             form.City,
		State:            form.State,
		Pincode:          form.Pincode,
		Dependents:       form.Dependents,
		CreditCards:      form.CreditCards,
		PreciousMetals:   form.PreciousMetals,
		FinancialPersona: form.FinancialPersona,
		UserPersona:      form.UserPersona,
	}
	if out.Name != "" {
		if err := validator.ValidateName(out.Name); err != nil {
			return out, err
		}
	}
	if out.Email != "" {
		if err := validator.ValidateEmail(out.Email); err != nil {
			return out, err
		}
	}
	if out.PAN != "" {
		if err := validator.ValidatePAN(out.PAN); err != nil {
			return out, err
		}
	}
	if out.Pincode != "" {
		if err := validator.ValidatePincode(out.Pincode); err != nil {
			return out, err
		}
	}
	if form.DOB != "" {
		dob, err := validator.ParseDOB(form.DOB, now)
		if err != nil {
			return out, err
		}
		out.DOB = &dob
	}
	if out.PreciousMetals != nil && (out.PreciousMetals.Gold < 0 || out.PreciousMetals.Silver < 0) {
		return out, errors.New("precious metal weights must not be negative")
	}
	return out, nil
}

// parseDate accepts a calendar date or an RFC3339 timestamp. A bare "to" date
// covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errInvalidDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseTransactionFilter(query url.Values) (aggregation.TransactionFilter, error) {
	from, err := parseDate(query.Get("from"), false)
	if err != nil {
		return aggregation.TransactionFilter{}, err
	}
	to, err := parseDate(query.Get("to"), true)
	if err != nil {
		return aggregation.TransactionFilter{}, err
	}
	return aggregation.TransactionFilter{
		From:     from,
		To:       to,
		Category: strings.TrimSpace(query.Get("category")),
		Limit:    parseInt(query.Get("limit"), aggregation.DefaultLimit),
		Offset:   parseInt(query.Get("offset"), 0),
	}, nil
}
