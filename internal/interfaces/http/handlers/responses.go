package handlers

import (
	"encoding/json"
	"time"

	"openfare/internal/domain/audit"
	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
	"openfare/internal/domain/user"
)

// Response DTOs shared by the handlers. Aggregates keep their fields
// private, so the JSON shapes are built here from accessors.

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name().String(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
	}
}

type OperatorResponse struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	TrustScore         float64 `json:"trust_score"`
	ComplaintCount     int     `json:"complaint_count"`
	AvgRefundTimeHours int     `json:"avg_refund_time_hours"`
}

func toOperatorResponse(op *operator.Operator) OperatorResponse {
	return OperatorResponse{
		ID:                 op.ID(),
		Name:               op.Name(),
		TrustScore:         op.TrustScore(),
		ComplaintCount:     op.ComplaintCount(),
		AvgRefundTimeHours: op.AvgRefundTimeHours(),
	}
}

func toOperatorResponses(operators []*operator.Operator) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(operators))
	for _, op := range operators {
		out = append(out, toOperatorResponse(op))
	}
	return out
}

type RefundResponse struct {
	ID          uint       `json:"id"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toRefundResponse(r *ticket.Refund) RefundResponse {
	return RefundResponse{
		ID:          r.ID(),
		Status:      string(r.Status()),
		Amount:      r.Amount(),
		ProcessedAt: r.ProcessedAt(),
		CreatedAt:   r.CreatedAt(),
	}
}

func toRefundResponses(refunds []*ticket.Refund) []RefundResponse {
	out := make([]RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		out = append(out, toRefundResponse(r))
	}
	return out
}

type TicketResponse struct {
	ID                 uint              `json:"id"`
	PNR                string            `json:"pnr"`
	Status             string            `json:"status"`
	Amount             float64           `json:"amount"`
	RefundAmount       *float64          `json:"refund_amount,omitempty"`
	RefundDeadline     *time.Time        `json:"refund_deadline,omitempty"`
	CancellationPolicy json.RawMessage   `json:"cancellation_policy"`
	Operator           *OperatorResponse `json:"operator,omitempty"`
	Refunds            []RefundResponse  `json:"refunds,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toTicketResponse(t *ticket.Ticket, op *operator.Operator, refunds []*ticket.Refund) TicketResponse {
	resp := TicketResponse{
		ID:                 t.ID(),
		PNR:                t.PNR(),
		Status:             string(t.Status()),
		Amount:             t.Amount(),
		RefundAmount:       t.RefundAmount(),
		RefundDeadline:     t.RefundDeadline(),
		CancellationPolicy: json.RawMessage(t.PolicyRaw()),
		CreatedAt:          t.CreatedAt(),
	}
	if op != nil {
		operatorResp := toOperatorResponse(op)
		resp.Operator = &operatorResp
	}
	if len(refunds) > 0 {
		resp.Refunds = toRefundResponses(refunds)
	}
	return resp
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	SenderID  uint      `json:"sender_id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(m *complaint.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID(),
		SenderID:  m.SenderID(),
		Content:   m.Content(),
		Read:      m.Read(),
		CreatedAt: m.CreatedAt(),
	}
}

func toMessageResponses(messages []*complaint.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return out
}

type ComplaintResponse struct {
	ID        uint              `json:"id"`
	PNR       string            `json:"pnr"`
	Reason    string            `json:"reason"`
	Status    string            `json:"status"`
	Operator  *OperatorResponse `json:"operator,omitempty"`
	Messages  []MessageResponse `json:"messages,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toComplaintResponse(c *complaint.Complaint, op *operator.Operator, messages []*complaint.Message) ComplaintResponse {
	resp := ComplaintResponse{
		ID:        c.ID(),
		PNR:       c.PNR(),
		Reason:    c.Reason(),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
	if op != nil {
		operatorResp := toOperatorResponse(op)
		resp.Operator = &operatorResp
	}
	if len(messages) > 0 {
		resp.Messages = toMessageResponses(messages)
	}
	return resp
}

type TrustScoreLogResponse struct {
	ID        uint      `json:"id"`
	OldScore  float64   `json:"old_score"`
	NewScore  float64   `json:"new_score"`
	Reason    string    `json:"reason"`
	SourceID  string    `json:"source_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toTrustScoreLogResponses(logs []*sla.TrustScoreLog) []TrustScoreLogResponse {
	out := make([]TrustScoreLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, TrustScoreLogResponse{
			ID:        l.ID(),
			OldScore:  l.OldScore(),
			NewScore:  l.NewScore(),
			Reason:    l.Reason(),
			SourceID:  l.SourceID(),
			CreatedAt: l.CreatedAt(),
		})
	}
	return out
}

type SLAConfigResponse struct {
	ID             uint    `json:"id"`
	Type           string  `json:"type"`
	ThresholdHours float64 `json:"threshold_hours"`
	Penalty        float64 `json:"penalty"`
}

func toSLAConfigResponses(configs []*sla.Config) []SLAConfigResponse {
	out := make([]SLAConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, SLAConfigResponse{
			ID:             cfg.ID(),
			Type:           string(cfg.Type()),
			ThresholdHours: cfg.ThresholdHours(),
			Penalty:        cfg.Penalty(),
		})
	}
	return out
}

type AuditLogResponse struct {
	ID            uint      `json:"id"`
	Action        string    `json:"action"`
	TargetID      string    `json:"target_id"`
	Details       string    `json:"details"`
	Justification *string   `json:"justification,omitempty"`
	PerformedBy   uint      `json:"performed_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAuditLogResponses(logs []*audit.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, AuditLogResponse{
			ID:            l.ID(),
			Action:        l.Action(),
			TargetID:      l.TargetID(),
			Details:       l.Details(),
			Justification: l.Justification(),
			PerformedBy:   l.PerformedBy(),
			CreatedAt:     l.CreatedAt(),
		})
	}
	return out
}
