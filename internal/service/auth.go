package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

type AuthService struct {
	usuarioRepo *repository.UsuarioRepository
	jwtSecret   string
	tokenExpiry time.Duration
	logger      *logrus.Logger
}

func NewAuthService(usuarioRepo *repository.UsuarioRepository, jwtSecret string, tokenExpiry time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		logger:      logger,
	}
}

// SignUp registra um novo usuário de acesso
func (s *AuthService) SignUp(ctx context.Context, input model.SignUpInput) (*model.Usuario, error) {
	s.logger.WithField("username", input.Username).Info("Registrando um novo usuário")

	exists, err := s.usuarioRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao verificar a existência do usuário")
		return nil, fmt.Errorf("erro ao verificar a existência do usuário: %w", err)
	}
	if exists {
		s.logger.Warn("Já existe um usuário com este username")
		return nil, fmt.Errorf("já existe um usuário com este username")
	}

	// Hash da senha antes de persistir
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao gerar o hash da senha")
		return nil, fmt.Errorf("erro ao gerar o hash da senha: %w", err)
	}

	usuario := &model.Usuario{
		Username:  input.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		s.logger.WithError(err).Error("Erro ao criar o usuário")
		return nil, err
	}

	s.logger.WithField("usuario_id", usuario.ID).Info("Usuário registrado com sucesso")
	return usuario, nil
}

// SignIn autentica o usuário e gera um token JWT
func (s *AuthService) SignIn(ctx context.Context, input model.SignInInput) (string, error) {
	s.logger.WithField("username", input.Username).Info("Tentativa de login")

	usuario, err := s.usuarioRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.logger.WithError(err).Warn("Usuário não encontrado ou credenciais inválidas")
		return "", fmt.Errorf("credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		s.logger.Warn("Senha incorreta na tentativa de login")
		return "", fmt.Errorf("credenciais inválidas")
	}

	token, err := s.GenerateJWTToken(usuario.ID)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao gerar o token JWT")
		return "", fmt.Errorf("erro ao gerar o token: %w", err)
	}

	s.logger.WithField("usuario_id", usuario.ID).Info("Login efetuado com sucesso")
	return token, nil
}

// GenerateJWTToken gera um token HS256 com o id do usuário como subject
func (s *AuthService) GenerateJWTToken(usuarioID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(usuarioID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken valida o token JWT e devolve o id do usuário
func (s *AuthService) ParseToken(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		s.logger.WithError(err).Warn("Token JWT inválido")
		return 0, fmt.Errorf("token inválido: %w", err)
	}

	usuarioID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		s.logger.Error("Não foi possível extrair o id do usuário do token")
		return 0, fmt.Errorf("claims do token incorretas")
	}

	return usuarioID, nil
}
