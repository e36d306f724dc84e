package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/email"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo    *repository.UserRepository
	mailer  *email.Sender
	baseURL string
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserRepository, mailer *email.Sender, baseURL string) *UserService {
	return &UserService{
		repo:    repo,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// RegisterUser registers a new user after hashing their password.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	logrus.Info("Registering new user")

	if user.Email == "" || user.Username == "" || user.HashedPassword == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("missing required user fields")
	}

	if !emailRegex.MatchString(user.Email) {
		logrus.WithField("email", user.Email).Warn("Invalid email format during registration")
		return nil, fmt.Errorf("invalid email format")
	}

	// Check if the email is already registered
	existingUser, _ := s.repo.GetUserByEmail(ctx, user.Email)
	if existingUser != nil {
		logrus.WithField("email", user.Email).Warn("Email already in use")
		return nil, fmt.Errorf("email already in use")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.HashedPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user.HashedPassword = string(hashedPwd)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if user.Role == "" {
		user.Role = "user"
	}

	user.VerifyToken = uuid.NewString()
	user.IsVerified = !s.mailer.Enabled() // no SMTP configured means no verification step

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	if s.mailer.Enabled() {
		verificationLink := fmt.Sprintf("%s/users/verify?token=%s", s.baseURL, user.VerifyToken)
		body := fmt.Sprintf("Welcome to Mdplanner!\n\nPlease verify your email by clicking the link below:\n%s", verificationLink)
		if err := s.mailer.Send(user.Email, "Email Verification", body); err != nil {
			logrus.WithError(err).Error("Failed to send verification email")
		}
	}

	logrus.WithFields(logrus.Fields{
		"userID": createdUser.ID.Hex(),
		"role":   createdUser.Role,
	}).Info("User registered successfully")

	return createdUser, nil
}

// VerifyEmail flips the verification flag for the user owning the token.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.repo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("invalid or expired verification token")
	}

	update := map[string]interface{}{
		"is_verified":  true,
		"verify_token": "",
	}
	if err := s.repo.UpdateUser(ctx, user.ID, update); err != nil {
		return fmt.Errorf("failed to update user verification status: %v", err)
	}
	return nil
}

// AuthenticateUser verifies the email and password and returns the user if credentials are valid.
func (s *UserService) AuthenticateUser(ctx context.Context, userEmail, password string) (*models.User, error) {
	logrus.WithField("email", userEmail).Info("Authenticating user")

	user, err := s.repo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		logrus.WithField("email", userEmail).Warn("User not found")
		return nil, fmt.Errorf("user not found")
	}

	if !user.IsVerified {
		logrus.WithField("email", userEmail).Warn("Attempt to login with unverified email")
		return nil, fmt.Errorf("email not verified. Please check your inbox")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", userEmail).Warn("Invalid credentials")
		return nil, fmt.Errorf("invalid credentials")
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logrus.WithError(err).Warn("Invalid user ID")
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	user, err := s.repo.GetUserByID(ctx, objID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to retrieve user")
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}

// GetAllUsers lists every account. Admin only.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAllUsers(ctx)
}
