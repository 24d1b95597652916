package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-backend/models"
)

// AuthController handles signup, login and profile lookup.
type AuthController struct {
	DB *gorm.DB
}

type SignupInput struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginInput struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Signup stores the account exactly as supplied. No duplicate-mobile check
// and no password hashing (see DESIGN.md).
func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	account := models.Account{
		FullName: input.FullName,
		DOB:      input.DOB,
		Gender:   input.Gender,
		Address:  input.Address,
		Mobile:   input.Mobile,
		Password: input.Password,
	}

	if err := ac.DB.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered successfully"})
}

// Login checks mobile and password by exact match. A miss is a normal 200
// with success:false; callers check the flag, not the status code.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	var account models.Account
	err := ac.DB.Where("mobile = ? AND password = ?", input.Mobile, input.Password).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUser fetches the first account matching the mobile query parameter and
// returns the full record.
func (ac *AuthController) GetUser(c *gin.Context) {
	mobile := c.Query("mobile")

	var account models.Account
	if err := ac.DB.Where("mobile = ?", mobile).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, account)
}
