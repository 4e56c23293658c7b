package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/models"
)

func (s *Server) handleListProposals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.deps.Proposals.List(c.Request.Context(), entproposal.Status(c.Query("status")), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": items})
}

func (s *Server) handleCreateProposal(c *gin.Context) {
	var req models.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	p, err := s.deps.Proposals.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// API-created proposals go straight to review.
	p, err = s.deps.Proposals.Propose(c.Request.Context(), p.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetProposal(c *gin.Context) {
	p, err := s.deps.Proposals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleApproveProposal(c *gin.Context) {
	var body struct {
		ApprovedBy string `json:"approved_by"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	p, err := s.deps.Proposals.Approve(c.Request.Context(), c.Param("id"), body.ApprovedBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleRejectProposal(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)
	p, err := s.deps.Proposals.Reject(c.Request.Context(), c.Param("id"), body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeployProposal(c *gin.Context) {
	if s.deps.Deployer == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "controller deployment is not configured"})
		return
	}
	p, err := s.deps.Deployer.Deploy(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleRollbackProposal(c *gin.Context) {
	if s.deps.Deployer == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "controller deployment is not configured"})
		return
	}
	p, err := s.deps.Deployer.Rollback(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleArchiveProposal(c *gin.Context) {
	p, err := s.deps.Proposals.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleAddProposalNote(c *gin.Context) {
	var body struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	p, err := s.deps.Proposals.AddReviewNote(c.Request.Context(), c.Param("id"), body.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
