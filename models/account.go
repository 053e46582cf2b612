// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a bank account visible to the API client. Accounts are
// identified by ID; Number is sensitive and masked in private mode.
type Account struct {
	ID            string `json:"accountId"`
	Number        string `json:"accountNumber"`
	Name          string `json:"accountName"`
	ReferenceName string `json:"referenceName"`
	ProductName   string `json:"productName"`
}
