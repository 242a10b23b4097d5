// Package payload assembles the values of a data sheet into the nested record
// handed to the save consumer, and encodes it as JSON, url-encoded form data
// or a flat text listing. Schema describes the record as an OpenAPI 3 object so
// consumers can check the shape they receive.
package payload
