// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// APIResponse is the envelope every game record endpoint answers with.
type APIResponse struct {
	Retcode int             `json:"retcode"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// GameRolesData is the payload of the bindings endpoint.
type GameRolesData struct {
	List []Character `json:"list"`
}
