package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamMhatre7788/insurai/internal/api"
	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// pngDocument fabricates a PNG of roughly the requested size; the mandatory
// signature bytes keep content sniffing happy.
func pngDocument(name string, size int) dto.FileUpload {
	content := make([]byte, size)
	copy(content, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	return dto.FileUpload{FileName: name, Content: content}
}

func pdfDocument(name string, size int) dto.FileUpload {
	content := make([]byte, size)
	copy(content, []byte("%PDF-1.4"))
	return dto.FileUpload{FileName: name, Content: content}
}

func validClaim() dto.CreateClaimRequest {
	return dto.CreateClaimRequest{
		ClientPolicyID:       7,
		ClaimAmountRequested: decimal.NewFromInt(2500),
		Description:          "water damage in server room",
		Documents:            []dto.FileUpload{pngDocument("photo.png", 2<<20)},
	}
}

func TestCreateClaimSubmitsMultipartFieldsAndDocuments(t *testing.T) {
	var (
		fields map[string][]string
		files  []string
	)
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		fields = r.MultipartForm.Value
		for _, part := range r.MultipartForm.File["documents"] {
			files = append(files, part.Filename)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 11, "status": "PENDING"})
	}))
	h.login(t)

	req := validClaim()
	req.Documents = append(req.Documents, pdfDocument("invoice.pdf", 4<<10))

	claim, err := api.NewClaimService(h.client).Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claim.ID)

	assert.Equal(t, []string{"7"}, fields["clientPolicyId"])
	assert.Equal(t, []string{"2500"}, fields["claimAmountRequested"])
	assert.Equal(t, []string{"water damage in server room"}, fields["description"])
	assert.Equal(t, []string{"photo.png", "invoice.pdf"}, files)
}

func TestCreateClaimRejectsInvalidDocumentsLocally(t *testing.T) {
	cases := map[string]func(*dto.CreateClaimRequest){
		"no documents": func(req *dto.CreateClaimRequest) {
			req.Documents = nil
		},
		"oversized document": func(req *dto.CreateClaimRequest) {
			req.Documents = []dto.FileUpload{pdfDocument("big.pdf", 11<<20)}
		},
		"unsupported type": func(req *dto.CreateClaimRequest) {
			req.Documents = []dto.FileUpload{{FileName: "notes.txt", Content: []byte("plain text notes")}}
		},
		"zero amount": func(req *dto.CreateClaimRequest) {
			req.ClaimAmountRequested = decimal.Zero
		},
		"missing description": func(req *dto.CreateClaimRequest) {
			req.Description = ""
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			requests := 0
			h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			h.login(t)

			req := validClaim()
			mutate(&req)

			_, err := api.NewClaimService(h.client).Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, util.IsValidation(err))
			assert.Zero(t, requests, "validation failures must not reach the network")
		})
	}
}

func TestCreateClaimAcceptsDocumentAtSizeLimit(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 12, "status": "PENDING"})
	}))
	h.login(t)

	req := validClaim()
	req.Documents = []dto.FileUpload{pdfDocument("exact.pdf", 10<<20)}

	_, err := api.NewClaimService(h.client).Create(context.Background(), req)
	require.NoError(t, err)
}
