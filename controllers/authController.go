package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgAccountDeactivated    = "account has been deactivated"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgGoogleTokenInvalid    = "Google sign-in could not be verified"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

// respondWithError reports an unexpected failure, passing the underlying
// error text through to the caller.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   errMsg,
	})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// signToken issues an HS256 bearer token carrying the account identity.
func signToken(id uint, email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(email, username string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ? OR username = ?", email, username).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signUpData.Email, signUpData.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Username:  signUpData.Username,
		Email:     signUpData.Email,
		Password:  hashedPassword,
		FirstName: signUpData.FirstName,
		LastName:  signUpData.LastName,
		Phone:     signUpData.Phone,
		Role:      "user",
		IsActive:  true,
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := signToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"user": user, "token": tokenString})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if !user.IsActive {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccountDeactivated)
		return
	}

	tokenString, err := signToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user, "token": tokenString})
}

type googleTokenInfo struct {
	Aud        string `json:"aud"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Sub        string `json:"sub"`
}

// GoogleSignIn verifies a Google ID token and signs the matching user in,
// creating the account on first sign-in.
func GoogleSignIn(ctx *gin.Context) {
	var body struct {
		Credential string `json:"credential" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).R().
		SetHeader("Accept", "application/json").
		SetQueryParam("id_token", body.Credential).
		Get("https://oauth2.googleapis.com/tokeninfo")
	if err != nil {
		log.Println("Google tokeninfo request error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgGoogleTokenInvalid)
		return
	}
	if resp.StatusCode() != http.StatusOK {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgGoogleTokenInvalid)
		return
	}

	var info googleTokenInfo
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgGoogleTokenInvalid)
		return
	}
	if info.Aud != os.Getenv("GOOGLE_CLIENT_ID") || info.Email == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgGoogleTokenInvalid)
		return
	}

	user, err := findUserByEmail(info.Email)
	if err != nil {
		// First sign-in: create the account with an unusable random password.
		randomSecret, err := utils.GenerateCode(16)
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		hashedPassword, err := hashPassword(randomSecret)
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		user = models.User{
			Username:     "google-" + info.Sub,
			Email:        info.Email,
			Password:     hashedPassword,
			FirstName:    info.GivenName,
			LastName:     info.FamilyName,
			Role:         "user",
			IsActive:     true,
			ProfileImage: info.Picture,
		}
		if result := initializers.DB.Create(&user); result.Error != nil {
			log.Println("Google user creation error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if !user.IsActive {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccountDeactivated)
		return
	}

	tokenString, err := signToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user, "token": tokenString})
}

// GetUsers lists all accounts, newest first.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := initializers.DB.Order("created_at DESC").Find(&users); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": users})
}
