package http

import "fmt"

// --- Request DTOs ---

type superuserReq struct {
	Email string `json:"email" binding:"required,email"`
}

type groupReq struct {
	GroupName string   `json:"group_name" binding:"required,min=1,max=255"`
	Members   []string `json:"members"    binding:"required,min=1,dive,email"`
}

// --- Response DTOs ---

type createGroupResp struct {
	Message string   `json:"message"`
	Members []string `json:"members,omitempty"`
}

func (h *handler) newCreateGroupResp(req groupReq, created bool) createGroupResp {
	if !created {
		return createGroupResp{Message: fmt.Sprintf("Group %s already exists.", req.GroupName)}
	}
	return createGroupResp{
		Message: fmt.Sprintf("Group %s created successfully.", req.GroupName),
		Members: req.Members,
	}
}

type listGroupsResp struct {
	Groups map[string][]string `json:"groups"`
}

func newSuperuserMessage(email string, added bool) string {
	if !added {
		return fmt.Sprintf("Superuser %s already exists.", email)
	}
	return fmt.Sprintf("Superuser %s added successfully.", email)
}
