// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Links carries the hypermedia links attached to every API response.
type Links struct {
	Self string `json:"self"`
}

// Meta carries paging metadata attached to every API response.
type Meta struct {
	TotalPages int `json:"totalPages"`
}

// AccountsResponse is the body of GET /za/pb/v1/accounts.
type AccountsResponse struct {
	Data struct {
		Accounts []Account `json:"accounts"`
	} `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// TransactionsResponse is the body of
// GET /za/pb/v1/accounts/{accountId}/transactions.
type TransactionsResponse struct {
	Data struct {
		Transactions []Transaction `json:"transactions"`
	} `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// BalanceResponse is the body of GET /za/pb/v1/accounts/{accountId}/balance.
type BalanceResponse struct {
	Data  Balance `json:"data"`
	Links Links   `json:"links"`
	Meta  Meta    `json:"meta"`
}
