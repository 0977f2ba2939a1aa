package model

// Package model defines the plain display data consumed by the UI controls:
// document rows, status enums, countries, and monetary values. Structures are
// designed for direct binding in the UI; business rules live in the backend
// supplying them.
