package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/controllers"
)

func BlogRoutes(server *gin.Engine) {
	blogs := server.Group("/api/blogs")
	{
		blogs.POST("", controllers.CreateBlog)
		blogs.GET("", controllers.GetBlogs)
		blogs.GET("/author/:authorId", controllers.GetBlogsByAuthor)
		blogs.GET("/slug/:slug", controllers.GetBlogBySlug)
		blogs.GET("/tags", controllers.GetBlogTags)
		blogs.PUT("/:id", controllers.UpdateBlog)
		blogs.DELETE("/:id", controllers.DeleteBlog)
	}
}
