// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

// BookingQuery is a validated date-ranged booking request. Both dates are in
// strict YYYY-MM-DD form and FromDate is not after ToDate.
type BookingQuery struct {
	// FromDate is the inclusive start of the range. Format and ordering are
	// checked by the booking service, not here.
	FromDate string `json:"date_from"`

	// ToDate is the inclusive end of the range.
	ToDate string `json:"date_to"`
}

// Range renders the query as a human-readable range for audit records.
func (q BookingQuery) Range() string {
	return q.FromDate + " to " + q.ToDate
}

// Booking is one record as returned by the upstream booking API.
// ReceiptDate, CustomerName and MobilePhone are mandatory; upstream rows
// missing any of them are skipped during projection.
type Booking struct {
	ReceiptDate  string  `json:"receiptdate"`
	CustomerName string  `json:"customername"`
	MobilePhone  string  `json:"mobilephone"`
	Sale         string  `json:"sale"`
	Manager      string  `json:"manager"`
	Price        float64 `json:"price"`
	DownPayment  float64 `json:"downpayment"`
	AdvancePay   float64 `json:"advancepay"`
	Model        string  `json:"model"`
	CarType      string  `json:"cartype"`
	Color        string  `json:"color"`
	JobStatus    string  `json:"jobstatus"`
}
