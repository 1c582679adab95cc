package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Madhyam API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/signup" - Create user account
- POST "/api/auth/login" - Access user account
- POST "/api/auth/google" - Sign in with a Google account
- GET "/api/auth/users" - List user accounts (admin)

DONORS
- POST "/api/donors" - Register as a donor
- GET "/api/donors" - List donors with pagination and filters
- GET "/api/donors/nearest" - Find nearest donors by location
- GET "/api/donors/:id" - Get donor by ID
- PUT "/api/donors/:id" - Update donor
- DELETE "/api/donors/:id" - Delete donor
- GET "/api/donors/stats/summary" - Summary stats for the dashboard

DONATIONS
- POST "/api/donors/donations" - Create a donation
- GET "/api/donors/donations" - List all donations
- GET "/api/donors/donations/user/:userId" - Get donations for a user
- PUT "/api/donors/donations/:id" - Update a donation
- DELETE "/api/donors/donations/:id" - Delete a donation

BLOGS
- POST "/api/blogs" - Create a blog post (multipart image field "image")
- GET "/api/blogs" - List blog posts
- GET "/api/blogs/author/:authorId" - List posts by author
- GET "/api/blogs/slug/:slug" - Get a post by slug
- GET "/api/blogs/tags" - List distinct tags
- PUT "/api/blogs/:id" - Update a post
- DELETE "/api/blogs/:id" - Delete a post

SPECIALS
- POST "/api/specials" - Create a menu item (multipart image field "image")
- GET "/api/specials" - List menu items
- GET "/api/specials/featured" - Featured items
- GET "/api/specials/categories" - Distinct categories
- GET "/api/specials/category/:category" - Items in a category
- GET "/api/specials/:id" - Get item by ID
- PUT "/api/specials/:id" - Update item
- DELETE "/api/specials/:id" - Delete item

VOLUNTEERS
- POST "/api/volunteers/register" - Register a volunteer
- POST "/api/volunteers/login" - Volunteer login
- GET "/api/volunteers" - List volunteers

VENDORS
- GET "/api/vendors" - List vendors
- POST "/api/vendors" - Add a vendor

CONTACT
- POST "/api/contact" - Send a contact message`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
