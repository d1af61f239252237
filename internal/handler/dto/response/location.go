package response

import "dealhub/internal/domain/geo"

type CandidateListResponse struct {
	Success bool            `json:"success"`
	Data    []geo.Candidate `json:"data"`
	Count   int             `json:"count"`
}

func FromCandidates(found []geo.Candidate) *CandidateListResponse {
	if found == nil {
		found = []geo.Candidate{}
	}
	return &CandidateListResponse{Success: true, Data: found, Count: len(found)}
}

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type AdminSessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
