package handler

import (
	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		DateOfBirth: m.DateOfBirth,
	}
}

func toPagedResponse(p *ports.PagedMembers) pagedResponse {
	data := make([]memberResponse, 0, len(p.Items))
	for _, m := range p.Items {
		data = append(data, toMemberResponse(m))
	}
	return pagedResponse{
		Data:          data,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}

func toMemberInput(req memberRequest) ports.MemberInput {
	return ports.MemberInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}
}
