package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userservice_backend/internals/features/users/user/dto"
	"userservice_backend/internals/features/users/user/model"
)

func TestUserBasicInfoNormalize(t *testing.T) {
	r := dto.UserBasicInfo{Email: "  User@Example.COM ", Username: " bob "}
	r.Normalize()
	assert.Equal(t, "user@example.com", r.Email)
	assert.Equal(t, "bob", r.Username)
}

func TestUserBasicInfoValidate(t *testing.T) {
	r := dto.UserBasicInfo{Email: "bob@example.com", Username: "bob"}
	require.NoError(t, r.Validate())

	r = dto.UserBasicInfo{Email: "not-an-email", Username: "bob"}
	assert.Error(t, r.Validate())

	r = dto.UserBasicInfo{Email: "bob@example.com"}
	assert.Error(t, r.Validate())
}

func TestUserBasicInfoToModelDefaultsActive(t *testing.T) {
	r := dto.UserBasicInfo{Email: "bob@example.com", Username: "bob"}
	m := r.ToModel()
	assert.True(t, m.Active)
	assert.Zero(t, m.ID)
}

func TestContactDetailsDataValidate(t *testing.T) {
	r := dto.ContactDetailsData{Address: "A", PhoneNumber: "P"}
	require.NoError(t, r.Validate())

	r = dto.ContactDetailsData{Address: "A"}
	assert.Error(t, r.Validate())
}

func TestFromUserModelFullWithoutRelation(t *testing.T) {
	m := &model.UserModel{ID: 1, Username: "bob", Email: "bob@example.com", Active: true}
	full := dto.FromUserModelFull(m)

	raw, err := json.Marshal(full)
	require.NoError(t, err)
	// absent relation serializes as an explicit null, never an empty shape
	assert.JSONEq(t, `{"id":1,"username":"bob","email":"bob@example.com","active":true,"contactDetails":null}`, string(raw))
}

func TestFromUserModelFullWithRelation(t *testing.T) {
	m := &model.UserModel{
		ID: 2, Username: "eve", Email: "eve@example.com", Active: false,
		ContactDetails: &model.ContactDetailsModel{ID: 9, UserID: 2, Address: "A", PhoneNumber: "P"},
	}
	full := dto.FromUserModelFull(m)

	require.NotNil(t, full.ContactDetails)
	assert.Equal(t, "A", full.ContactDetails.Address)
	assert.Equal(t, "P", full.ContactDetails.PhoneNumber)

	// internal ids never leak through the contact shape
	raw, err := json.Marshal(full.ContactDetails)
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"A","phoneNumber":"P"}`, string(raw))
}

func TestFromUserModelsKeepsOrderAndShape(t *testing.T) {
	ms := []model.UserModel{
		{ID: 1, Username: "a", Email: "a@example.com", Active: true},
		{ID: 2, Username: "b", Email: "b@example.com", Active: false},
	}
	infos := dto.FromUserModels(ms)
	require.Len(t, infos, 2)
	assert.Equal(t, 1, infos[0].ID)
	assert.Equal(t, 2, infos[1].ID)

	raw, err := json.Marshal(infos[0])
	require.NoError(t, err)
	// no contactDetails key on the summary shape
	assert.JSONEq(t, `{"id":1,"username":"a","email":"a@example.com","active":true}`, string(raw))
}

func TestFromUserModelsEmpty(t *testing.T) {
	raw, err := json.Marshal(dto.FromUserModels(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
