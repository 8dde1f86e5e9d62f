package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/middleware"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	votePolicy      *services.VotePolicyService
}

func NewProposalHandler(db *gorm.DB, policyCfg *config.PolicyConfig) *ProposalHandler {
	return &ProposalHandler{
		proposalService: services.NewProposalService(db),
		votePolicy:      services.NewVotePolicyService(db, policyCfg.QuorumFraction),
	}
}

type castVoteRequest struct {
	Choice string `json:"choice" binding:"required,oneof=yes no abstain"`
}

func (h *ProposalHandler) List(c *gin.Context) {
	var req services.ProposalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.proposalService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, result)
}

func (h *ProposalHandler) Get(c *gin.Context) {
	proposal, err := h.proposalService.GetByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, proposal)
}

func (h *ProposalHandler) Create(c *gin.Context) {
	var req services.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	proposal, err := h.proposalService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, proposal)
}

func (h *ProposalHandler) Update(c *gin.Context) {
	var req services.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	proposal, err := h.proposalService.Update(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, proposal)
}

func (h *ProposalHandler) Delete(c *gin.Context) {
	if err := h.proposalService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}

// CastVote records the current user's ballot on the proposal
// POST /api/v1/proposals/:id/votes
func (h *ProposalHandler) CastVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vote, err := h.votePolicy.CastVote(c.Param("id"), middleware.GetUserID(c), req.Choice)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, vote)
}

// GetResults returns the quorum flag and the vote tally by choice
// GET /api/v1/proposals/:id/results
func (h *ProposalHandler) GetResults(c *gin.Context) {
	results, err := h.votePolicy.GetProposalResults(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, results)
}

// GetQuorum reports whether the proposal has reached quorum
// GET /api/v1/proposals/:id/quorum
func (h *ProposalHandler) GetQuorum(c *gin.Context) {
	reached, err := h.votePolicy.IsQuorumReached(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"quorum_met": reached})
}
