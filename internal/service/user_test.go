package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/mailer"
)

type UserServiceTestSuite struct {
	suite.Suite
	env        *testEnv
	ctx        context.Context
	acme       *domain.Business
	globex     *domain.Business
	superAdmin *domain.User
	admin      *domain.User
	member     *domain.User
	outsider   *domain.User
	pending    *domain.User
}

func (s *UserServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.ctx = context.Background()

	s.acme = s.env.seedBusiness(s.T(), "Acme")
	s.globex = s.env.seedBusiness(s.T(), "Globex")
	s.superAdmin = s.env.seedUser(s.T(), "root@x.io", domain.RoleSuperAdmin, "")
	s.admin = s.env.seedUser(s.T(), "admin@acme.io", domain.RoleAdmin, s.acme.ID)
	s.member = s.env.seedUser(s.T(), "member@acme.io", domain.RoleDefault, s.acme.ID)
	s.outsider = s.env.seedUser(s.T(), "member@globex.io", domain.RoleDefault, s.globex.ID)
	s.pending = s.env.seedUser(s.T(), "new@x.io", domain.RolePending, "")
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestList_ScopedByRole() {
	// Act
	all, allErr := s.env.users.List(s.ctx, s.superAdmin)
	tenant, tenantErr := s.env.users.List(s.ctx, s.admin)
	_, memberErr := s.env.users.List(s.ctx, s.member)

	// Assert
	s.NoError(allErr)
	s.Len(all, 5)
	s.NoError(tenantErr)
	s.Len(tenant, 2)
	for _, u := range tenant {
		s.Equal(s.acme.ID, u.BusinessID)
	}
	s.ErrorIs(memberErr, ErrInsufficientRole)
}

func (s *UserServiceTestSuite) TestUpdate_SelfProfileFields() {
	// Act
	updated, err := s.env.users.Update(s.ctx, s.member, s.member.ID, dto.UpdateUserRequest{
		FirstName:   strPtr(" Mia "),
		PhoneNumber: strPtr("555-0100"),
	}, nil)

	// Assert
	s.Require().NoError(err)
	s.Equal("Mia", updated.FirstName)
	s.Equal("555-0100", updated.PhoneNumber)
}

func (s *UserServiceTestSuite) TestUpdate_Authorization() {
	tests := []struct {
		name    string
		caller  func() *domain.User
		target  func() *domain.User
		req     dto.UpdateUserRequest
		wantErr error
	}{
		{
			name:    "member cannot update another user",
			caller:  func() *domain.User { return s.member },
			target:  func() *domain.User { return s.admin },
			req:     dto.UpdateUserRequest{FirstName: strPtr("x")},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "admin cannot reach another business",
			caller:  func() *domain.User { return s.admin },
			target:  func() *domain.User { return s.outsider },
			req:     dto.UpdateUserRequest{FirstName: strPtr("x")},
			wantErr: ErrCrossTenantAccess,
		},
		{
			name:    "role cannot be raised to super admin",
			caller:  func() *domain.User { return s.superAdmin },
			target:  func() *domain.User { return s.member },
			req:     dto.UpdateUserRequest{Role: strPtr("SUPER_ADMIN")},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "member cannot change own role",
			caller:  func() *domain.User { return s.member },
			target:  func() *domain.User { return s.member },
			req:     dto.UpdateUserRequest{Role: strPtr("ADMIN")},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "profile status is super admin only",
			caller:  func() *domain.User { return s.admin },
			target:  func() *domain.User { return s.member },
			req:     dto.UpdateUserRequest{ProfileStatus: strPtr("SUSPENDED")},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "admin cannot move a bound user",
			caller:  func() *domain.User { return s.admin },
			target:  func() *domain.User { return s.member },
			req:     dto.UpdateUserRequest{BusinessID: strPtr(s.globex.ID)},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "admin cannot bind to a foreign business",
			caller:  func() *domain.User { return s.admin },
			target:  func() *domain.User { return s.pending },
			req:     dto.UpdateUserRequest{BusinessID: strPtr(s.globex.ID)},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "admin cannot edit the profile of an unbound user",
			caller:  func() *domain.User { return s.admin },
			target:  func() *domain.User { return s.pending },
			req:     dto.UpdateUserRequest{FirstName: strPtr("x")},
			wantErr: ErrInsufficientRole,
		},
		{
			name:    "self password change needs the current password",
			caller:  func() *domain.User { return s.member },
			target:  func() *domain.User { return s.member },
			req:     dto.UpdateUserRequest{Password: strPtr("N3wPass!word"), CurrentPassword: strPtr("nope")},
			wantErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.env.users.Update(s.ctx, tt.caller(), tt.target().ID, tt.req, nil)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *UserServiceTestSuite) TestUpdate_InvalidValues() {
	tests := []struct {
		name string
		req  dto.UpdateUserRequest
	}{
		{name: "pending role", req: dto.UpdateUserRequest{Role: strPtr("PENDING")}},
		{name: "unknown role", req: dto.UpdateUserRequest{Role: strPtr("OWNER")}},
		{name: "unknown status", req: dto.UpdateUserRequest{ProfileStatus: strPtr("GONE")}},
		{name: "weak password", req: dto.UpdateUserRequest{Password: strPtr("weak")}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.env.users.Update(s.ctx, s.superAdmin, s.member.ID, tt.req, nil)
			var validation *ValidationError
			s.ErrorAs(err, &validation)
		})
	}
}

func (s *UserServiceTestSuite) TestUpdate_AdminPromotesAndBindsPendingUser() {
	// Act
	updated, err := s.env.users.Update(s.ctx, s.admin, s.pending.ID, dto.UpdateUserRequest{
		Role:       strPtr("default"),
		BusinessID: strPtr(s.acme.ID),
	}, nil)

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.RoleDefault, updated.Role)
	s.Equal(s.acme.ID, updated.BusinessID)
}

func (s *UserServiceTestSuite) TestUpdate_SuperAdminBindsToUnknownBusiness() {
	// Act
	_, err := s.env.users.Update(s.ctx, s.superAdmin, s.member.ID, dto.UpdateUserRequest{BusinessID: strPtr("missing")}, nil)

	// Assert
	s.ErrorIs(err, ErrBusinessNotFound)
}

func (s *UserServiceTestSuite) TestUpdate_PasswordChange() {
	// Act
	_, selfErr := s.env.users.Update(s.ctx, s.member, s.member.ID, dto.UpdateUserRequest{
		Password:        strPtr("N3wPass!word"),
		CurrentPassword: strPtr(testPassword),
	}, nil)
	_, resetErr := s.env.users.Update(s.ctx, s.admin, s.member.ID, dto.UpdateUserRequest{
		Password: strPtr("Adm1nSet!pass"),
	}, nil)

	// Assert
	s.NoError(selfErr)
	s.NoError(resetErr)
	_, err := s.env.auth.Login(s.ctx, dto.LoginRequest{Email: s.member.Email, Password: "Adm1nSet!pass"})
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestUpdate_ProfilePictureIsPublic() {
	// Act
	updated, err := s.env.users.Update(s.ctx, s.member, s.member.ID, dto.UpdateUserRequest{}, func() *dto.FileUpload {
		upload := pngUpload(s.T())
		return &upload
	}())

	// Assert
	s.Require().NoError(err)
	s.NotEmpty(updated.ProfilePicture)
	metadata, err := s.env.files.PublicMetadata(s.ctx, updated.ProfilePicture)
	s.Require().NoError(err)
	s.True(metadata.PublicAccess)
	s.Equal("image/png", metadata.MimeType)
}

func (s *UserServiceTestSuite) TestUpdate_UnknownTarget() {
	// Act
	_, err := s.env.users.Update(s.ctx, s.superAdmin, "missing", dto.UpdateUserRequest{}, nil)

	// Assert
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestInvite_BindsAndMails() {
	// Arrange
	s.env.sender.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
		return m.Type == mailer.MessageTypeInvitation && m.To == "new@x.io"
	})).Return(nil).Once()

	// Act
	err := s.env.users.Invite(s.ctx, s.admin, "NEW@x.io")

	// Assert
	s.Require().NoError(err)
	user, err := s.env.repo.User().GetByID(s.ctx, s.pending.ID)
	s.Require().NoError(err)
	s.Equal(s.acme.ID, user.BusinessID)
	s.env.sender.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestInvite_Failures() {
	// Act
	notAdmin := s.env.users.Invite(s.ctx, s.member, "new@x.io")
	unknown := s.env.users.Invite(s.ctx, s.admin, "ghost@x.io")
	bound := s.env.users.Invite(s.ctx, s.admin, "member@globex.io")

	// Assert
	s.ErrorIs(notAdmin, ErrInsufficientRole)
	s.ErrorIs(unknown, ErrNotFound)
	s.EqualError(unknown, "User with email ghost@x.io not found.")
	s.EqualError(bound, "User already assigned to a business.")
}

func (s *UserServiceTestSuite) TestInvite_MailFailure() {
	// Arrange
	s.env.sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("boom"))

	// Act
	err := s.env.users.Invite(s.ctx, s.admin, "new@x.io")

	// Assert
	s.ErrorIs(err, ErrUpstream)
}
