package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserBlocked is returned when a blocked user attempts to log in.
	ErrUserBlocked = errors.New("user is blocked")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash, role string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance. kafkaWriter may be nil.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user account with the user role.
func (svc *AuthService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, email, string(hashedPassword), models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	svc.publishNotification(ctx, models.NotificationEvent{
		Kind:      models.NotifyWelcome,
		UserID:    userID.String(),
		Email:     email,
		Timestamp: time.Now().Unix(),
	})

	return userID, nil
}

// Login authenticates a user and returns a JWT token. Blocked users are
// rejected even with valid credentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	if user.IsBlocked {
		logger.Log.Warnw("blocked user attempted login", "email", email)
		return "", ErrUserBlocked
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	svc.publishNotification(ctx, models.NotificationEvent{
		Kind:      models.NotifyLogin,
		UserID:    user.UserID.String(),
		Email:     user.Email,
		Timestamp: time.Now().Unix(),
	})

	return token, nil
}

// publishNotification publishes a notification event to Kafka, best effort.
func (svc *AuthService) publishNotification(ctx context.Context, event models.NotificationEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification event", "kind", event.Kind, "error", err)
		return
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.UserID), Value: data}); err != nil {
		logger.Log.Errorw("failed to publish notification event", "kind", event.Kind, "error", err)
	}
}
