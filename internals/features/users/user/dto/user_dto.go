package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	uModel "userservice_backend/internals/features/users/user/model"
)

// shared validator instance
var validate = validator.New()

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UserBasicInfo — create input. Only the public fields; ids are assigned
// by the store.
type UserBasicInfo struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
}

func (r *UserBasicInfo) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Username = strings.TrimSpace(r.Username)
}

func (r *UserBasicInfo) Validate() error {
	return validate.Struct(r)
}

// ToModel — new users start active.
func (r *UserBasicInfo) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		Username: r.Username,
		Email:    r.Email,
		Active:   true,
	}
}

// ContactDetailsData — contact upsert input and the standalone contact
// output. No ids, no back-reference to the user.
type ContactDetailsData struct {
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (r *ContactDetailsData) Normalize() {
	r.Address = strings.TrimSpace(r.Address)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

func (r *ContactDetailsData) Validate() error {
	return validate.Struct(r)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserInfo — list/summary output, no relation.
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

// UserInfoFull — detail output. ContactDetails serializes as null when the
// user has none; it is never an empty placeholder.
type UserInfoFull struct {
	ID             int                 `json:"id"`
	Username       string              `json:"username"`
	Email          string              `json:"email"`
	Active         bool                `json:"active"`
	ContactDetails *ContactDetailsData `json:"contactDetails"`
}

/* =======================================================
   CONVERTERS
   ======================================================= */

func FromUserModel(m *uModel.UserModel) UserInfo {
	return UserInfo{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		Active:   m.Active,
	}
}

func FromUserModels(ms []uModel.UserModel) []UserInfo {
	out := make([]UserInfo, 0, len(ms))
	for i := range ms {
		out = append(out, FromUserModel(&ms[i]))
	}
	return out
}

func FromUserModelFull(m *uModel.UserModel) UserInfoFull {
	full := UserInfoFull{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		Active:   m.Active,
	}
	if m.ContactDetails != nil {
		cd := FromContactDetailsModel(m.ContactDetails)
		full.ContactDetails = &cd
	}
	return full
}

func FromContactDetailsModel(m *uModel.ContactDetailsModel) ContactDetailsData {
	return ContactDetailsData{
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
	}
}
