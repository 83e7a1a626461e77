package model

// UUIDPayload is the JSON body exchanged with the target endpoint
// (httpbin.org/uuid compatible). The value lives only for the duration of a
// single fetch; nothing is persisted.
type UUIDPayload struct {
	UUID string `json:"uuid"`
}
