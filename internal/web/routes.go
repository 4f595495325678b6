package web

func (a *App) routes() {
	e := a.echo

	// pages
	e.GET("/", a.homePageHandler)
	e.POST("/", a.submitFormHandler)
	e.GET("/auth", a.loginPageHandler)
	e.POST("/auth", a.loginFormHandler)

	admin := e.Group("/admin", a.requireAdminPage)
	admin.GET("", a.adminPageHandler)
	admin.POST("/registrations/:id/delete", a.adminDeleteHandler)
	admin.POST("/logout", a.adminLogoutHandler)

	// JSON API
	e.POST("/register", a.registerHandler)
	e.POST("/login", a.loginHandler)
	e.POST("/logout", a.logoutHandler)
	e.GET("/user", a.userHandler)

	regs := e.Group("/registrations", a.requireAdmin)
	regs.GET("", a.listRegistrationsHandler)
	regs.GET("/stats", a.statsHandler)
	regs.GET("/export", a.exportHandler)
	regs.DELETE("/:id", a.deleteRegistrationHandler)
}
