package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/models"
)

type CustomerService interface {
	Create(ctx context.Context, in models.CreateCustomer) (created models.Customer, err error)
	Authenticate(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
	GetOne(ctx context.Context, id int64) (result models.Customer, err error)
}

type customer service

var _ CustomerService = (*customer)(nil)

func (cs *customer) Create(ctx context.Context, in models.CreateCustomer) (created models.Customer, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	result, err := cs.srv.sqlRepo.GetCustomerRepository().Create(ctx, models.Customer{
		Name:         in.Name,
		Surname:      in.Surname,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreditLimit:  models.NewDecimalFromExternal(in.CreditLimit),
	})
	if err != nil {
		return
	}

	log.Info(ctx, "[CUSTOMER.CREATED]",
		log.Int64("customerId", result.ID),
		log.String("role", result.Role),
	)

	created = *result
	return
}

func (cs *customer) Authenticate(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error) {
	cust, err := cs.srv.sqlRepo.GetCustomerRepository().GetOneByUsername(ctx, username)
	if err != nil {
		// an unknown username must be indistinguishable from a wrong password
		if errors.Is(err, common.ErrCustomerNotFound) {
			err = common.ErrInvalidCredentials
		}
		return
	}

	if err = bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(password)); err != nil {
		err = common.ErrInvalidCredentials
		return
	}

	token, err = cs.srv.tokenManager.Generate(cust)
	if err != nil {
		return
	}

	expiresAt = time.Now().Add(cs.srv.conf.Auth.TokenTTL)
	return
}

func (cs *customer) GetOne(ctx context.Context, id int64) (result models.Customer, err error) {
	return cs.srv.sqlRepo.GetCustomerRepository().GetOne(ctx, id)
}
