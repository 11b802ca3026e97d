// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package api

import (
	"net/http"
	"time"

	"github.com/TFMV/ProjectAddressCheck/internal/matcher"
	"github.com/TFMV/ProjectAddressCheck/internal/standardizer"
	"github.com/TFMV/ProjectAddressCheck/pkg/notify"
	"github.com/TFMV/ProjectAddressCheck/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Logger is the structured logger used by the handlers and middleware.
type Logger interface {
	matcher.Logger
	Warn(msg string, keysAndValues ...interface{})
}

// LeadCheckRequest carries the fields of a newly created lead.
type LeadCheckRequest struct {
	Fields map[string]*string `json:"fields" binding:"required"`
}

// NormalizeRequest carries a single raw address.
type NormalizeRequest struct {
	Address string `json:"address"`
}

// NormalizeResponse holds the normalized form of an address.
type NormalizeResponse struct {
	Address    string `json:"address"`
	Normalized string `json:"normalized"`
}

// CompareRequest carries two raw addresses.
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResponse holds both normalized addresses and their score.
type CompareResponse struct {
	NormalizedA string             `json:"normalized_a"`
	NormalizedB string             `json:"normalized_b"`
	Score       matcher.MatchScore `json:"score"`
}

// Handler serves the address check endpoints.
type Handler struct {
	source     matcher.RecordSource
	query      matcher.Query
	normalizer *standardizer.Normalizer
	logger     Logger
}

// NewHandler creates a Handler that scans candidates from source with query.
func NewHandler(source matcher.RecordSource, query matcher.Query, logger Logger) *Handler {
	return &Handler{
		source:     source,
		query:      query,
		normalizer: standardizer.NewNormalizer(nil),
		logger:     logger,
	}
}

// SetupRoutes registers the middleware and endpoints on router.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.Use(RequestLogger(h.logger), ErrorHandler())

	router.GET("/health", HealthCheckHandler())
	router.POST("/leads/check", h.CheckLeadHandler)
	router.POST("/addresses/normalize", h.NormalizeHandler)
	router.POST("/addresses/compare", h.CompareHandler)
}

// CheckLeadHandler looks for an existing project at the lead's address.
func (h *Handler) CheckLeadHandler(c *gin.Context) {
	var req LeadCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		_ = c.Error(err)
		return
	}

	checker := &matcher.Checker{
		Source:     h.source,
		Sink:       notify.LogSink{Logger: h.logger},
		Logger:     h.logger,
		Normalizer: h.normalizer,
		Query:      h.query,
	}
	result := checker.Check(c.Request.Context(), matcher.MapRecord(req.Fields))

	message := "No similar project address found"
	switch result.Status {
	case matcher.StatusMatched:
		message = "Possible project found"
	case matcher.StatusSkipped:
		message = "Lead has no address, check skipped"
	}

	utils.SendJSON(c, http.StatusOK, message, result)
}

// NormalizeHandler returns the normalized form of an address.
func (h *Handler) NormalizeHandler(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		_ = c.Error(err)
		return
	}

	utils.SendJSON(c, http.StatusOK, "", NormalizeResponse{
		Address:    req.Address,
		Normalized: h.normalizer.Normalize(req.Address),
	})
}

// CompareHandler scores two addresses against each other.
func (h *Handler) CompareHandler(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		_ = c.Error(err)
		return
	}

	a := h.normalizer.Normalize(req.A)
	b := h.normalizer.Normalize(req.B)
	utils.SendJSON(c, http.StatusOK, "", CompareResponse{
		NormalizedA: a,
		NormalizedB: b,
		Score:       matcher.Score(a, b),
	})
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}
