package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"aggregator/internal/auth"
	"aggregator/internal/db"
	"aggregator/internal/generator"
	"aggregator/internal/models"
	"aggregator/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Provisioner interface {
	Provision(ctx context.Context, user models.User, actorID string) (generator.Profile, error)
}

type ProfileService struct {
	txRunner    db.TxRunner
	users       UserStore
	accounts    AccountStore
	audit       AuditStore
	provisioner Provisioner
	now         func() time.Time
}

func NewProfileService(txRunner db.TxRunner, users UserStore, accounts AccountStore, audit AuditStore, provisioner Provisioner) *ProfileService {
	return &ProfileService{
		txRunner:    txRunner,
		users:       users,
		accounts:    accounts,
		audit:       audit,
		provisioner: provisioner,
		now:         time.Now,
	}
}

type RegisterRequest struct {
	Name    string
	Mobile  string
	PIN     string
	Email   string
	PAN     string
	DOB     time.Time
	Address string
	City    string
	State   string
	Pincode string
}

// Register stores a new user and provisions their financial profile.
func (s *ProfileService) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	if _, err := s.users.GetByMobile(ctx, req.Mobile); err == nil {
		return models.User{}, ErrMobileTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}
	pinHash, err := auth.HashPIN(req.PIN)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:          uuid.NewString(),
		AAHandle:    models.AAHandleFor(req.Mobile),
		Mobile:      req.Mobile,
		PinHash:     pinHash,
		Name:        req.Name,
		Email:       req.Email,
		PAN:         strings.ToUpper(req.PAN),
		DOB:         req.DOB,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Dependents:  []models.Dependent{},
		CreditCards: []models.HeldCard{},
		CreatedAt:   s.now(),
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.users.Create(ctx, tx, user); err != nil {
			return err
		}
		data, _ := json.Marshal(map[string]string{
			"aa_handle": user.AAHandle,
		})
		return s.audit.Log(ctx, tx, user.ID, "user.register", "user", user.ID, string(data))
	})
	if errors.Is(err, store.ErrDuplicate) {
		return models.User{}, ErrMobileTaken
	}
	if err != nil {
		return models.User{}, err
	}
	if _, err := s.provisioner.Provision(ctx, user, user.ID); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login accepts either a mobile number or an AA handle as identifier.
func (s *ProfileService) Login(ctx context.Context, identifier, pin string) (models.User, error) {
	var (
		user models.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByAAHandle(ctx, identifier)
	} else {
		user, err = s.users.GetByMobile(ctx, identifier)
	}
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !auth.CheckPIN(user.PinHash, pin) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *ProfileService) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ListUsers returns one page of users and the total count.
func (s *ProfileService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ProfileUpdate carries form fields. Zero values leave the stored field alone.
type ProfileUpdate struct {
	Name             string
	Email            string
	PAN              string
	DOB              *time.Time
	Address          string
	City             string
	State            string
	Pincode          string
	Dependents       []models.Dependent
	CreditCards      []models.HeldCard
	PreciousMetals   *models.PreciousMetals
	FinancialPersona string
	UserPersona      string
}

func (u ProfileUpdate) apply(user *models.User) []string {
	var changed []string
	setString := func(field string, dst *string, value string) {
		if value != "" && value != *dst {
			*dst = value
			changed = append(changed, field)
		}
	}
	setString("name", &user.Name, u.Name)
	setString("email", &user.Email, u.Email)
	setString("pan", &user.PAN, strings.ToUpper(u.PAN))
	setString("address", &user.Address, u.Address)
	setString("city", &user.City, u.City)
	setString("state", &user.State, u.State)
	setString("pincode", &user.Pincode, u.Pincode)
	setString("financial_persona", &user.FinancialPersona, u.FinancialPersona)
	setString("user_persona", &user.UserPersona, u.UserPersona)
	if u.DOB != nil && !u.DOB.Equal(user.DOB) {
		user.DOB = *u.DOB
		changed = append(changed, "dob")
	}
	if u.Dependents != nil {
		user.Dependents = u.Dependents
		changed = append(changed, "dependents")
	}
	if u.CreditCards != nil {
		user.CreditCards = u.CreditCards
		changed = append(changed, "credit_cards")
	}
	if u.PreciousMetals != nil {
		user.PreciousMetals = *u.PreciousMetals
		changed = append(changed, "precious_metals")
	}
	return changed
}

// SubmitForm applies a profile form. A user without accounts gets a profile
// provisioned afterwards; the second return value reports whether that happened.
func (s *ProfileService) SubmitForm(ctx context.Context, userID string, update ProfileUpdate) (models.User, bool, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return models.User{}, false, err
	}
	changed := update.apply(&user)
	if len(changed) > 0 {
		err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
			if err := s.users.Update(ctx, tx, user); err != nil {
				return err
			}
			data, _ := json.Marshal(map[string][]string{
				"fields": changed,
			})
			return s.audit.Log(ctx, tx, userID, "profile.update", "user", userID, string(data))
		})
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, false, ErrUserNotFound
		}
		if err != nil {
			return models.User{}, false, err
		}
	}

	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return models.User{}, false, err
	}
	if len(accounts) > 0 {
		return user, false, nil
	}
	if _, err := s.provisioner.Provision(ctx, user, userID); err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}
