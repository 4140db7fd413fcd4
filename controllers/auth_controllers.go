package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/upstream"
	"github.com/flexipack-labs/order-portal/utils"
)

type AuthController struct {
	Upstream *upstream.Client
}

func NewAuthController(client *upstream.Client) *AuthController {
	return &AuthController{Upstream: client}
}

// ShowLogin renders the login form. A visitor who already holds a session
// flag goes straight to the dashboard instead.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(utils.SessionCookie); err == nil && token != "" {
		if _, err := utils.ParseSessionToken(token); err == nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Username": ""})
}

// Login proxies the credential check upstream. Success sets the session
// cookie and follows the server-provided redirect (the site root maps to
// the dashboard); failure re-renders the form with an inline error and no
// navigation.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	result, err := ac.Upstream.Login(c.Request.Context(), username, password)
	if err != nil {
		utils.ErrorLogger.Printf("login: upstream error: %v", err)
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    "Login failed. Please try again.",
			"Username": username,
		})
		return
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Invalid credentials. Please try again."
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    msg,
			"Username": username,
		})
		return
	}

	token, err := utils.GenerateSessionToken(username)
	if err != nil {
		utils.ErrorLogger.Printf("login: token: %v", err)
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    "Login failed. Please try again.",
			"Username": username,
		})
		return
	}

	c.SetCookie(utils.SessionCookie, token, 24*60*60, "/", "", false, true)

	target := result.Redirect
	if target == "" || target == "/" {
		target = "/dashboard"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Logout clears the session flag and returns to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// SetTheme persists the theme preference cookie.
func (ac *AuthController) SetTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Theme != "light" && body.Theme != "dark" {
		utils.RespondJSON(c, http.StatusBadRequest, "unknown theme", nil)
		return
	}
	c.SetCookie("theme", body.Theme, 365*24*60*60, "/", "", false, false)
	utils.RespondJSON(c, http.StatusOK, "theme saved", nil)
}
