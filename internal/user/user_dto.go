package user

type ListUsersFilter struct {
	Role       string `form:"role" binding:"omitempty,oneof=employee manager hr admin"`
	Department string `form:"department"`
}

// AssignManagerRequest clears the assignment when manager_id is null.
type AssignManagerRequest struct {
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	EmployeeCode string  `json:"employee_code"`
	Department   string  `json:"department,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// UserOption is the trimmed shape served to manager-assignment pickers.
type UserOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Role         string `json:"role"`
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		IsActive:     u.IsActive,
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}

func mapToOptions(users []User) []UserOption {
	opts := make([]UserOption, len(users))
	for i, u := range users {
		opts[i] = UserOption{
			ID:           u.ID.String(),
			Name:         u.Name,
			EmployeeCode: u.EmployeeCode,
			Role:         u.Role,
		}
	}
	return opts
}
