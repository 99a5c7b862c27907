// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/user/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type RegisterReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	// Avatar base64 或者 URL
	Avatar string `json:"avatar"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileReq struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
}

type UpdatePasswordReq struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type AddressIDReq struct {
	ID string `json:"id"`
}

type Address struct {
	ID          string `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
}

type Profile struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	Avatar      string    `json:"avatar"`
	Addresses   []Address `json:"addresses"`
	Ctime       int64     `json:"ctime"`
}

type ProfileList struct {
	Total int64     `json:"total"`
	Users []Profile `json:"users"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		Avatar:      u.Avatar.URL,
		Addresses: slice.Map(u.Addresses, func(idx int, src domain.Address) Address {
			return Address(src)
		}),
		Ctime: u.Ctime,
	}
}

func newProfileList(us []domain.User, total int64) ProfileList {
	return ProfileList{
		Total: total,
		Users: slice.Map(us, func(idx int, src domain.User) Profile {
			return newProfile(src)
		}),
	}
}
