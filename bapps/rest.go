package bapps

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/statikomand/komand/shell"
	"github.com/statikomand/komand/version"
)

// RestApp exposes a shell over HTTP.
type RestApp struct {
	port int
}

// NewRestApp builds the REST server application listening on port.
func NewRestApp(port int) App {
	return &RestApp{
		port: port,
	}
}

// Run serves the shell until the process is stopped.
func (a *RestApp) Run(s *shell.Shell) {
	r := gin.Default()
	a.setupRoutes(r, s)
	r.Run(fmt.Sprintf(":%d", a.port))
}

type lineRequest struct {
	Line string `json:"line"`
}

type commandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Usage       string `json:"usage,omitempty"`
}

// setupRoutes registers the REST endpoints serving s on r.
func (a *RestApp) setupRoutes(r *gin.Engine, s *shell.Shell) {
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.Version.String()})
	})

	r.GET("/api/commands", func(c *gin.Context) {
		infos := lo.Map(s.Commands(), func(cmd *shell.Command, _ int) commandInfo {
			return commandInfo{
				Name:        cmd.Name,
				Description: cmd.Description,
				Usage:       cmd.Parser.Usage(),
			}
		})
		c.JSON(http.StatusOK, gin.H{"commands": infos})
	})

	r.POST("/api/parse", func(c *gin.Context) {
		req := lineRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cmd, result, err := s.Dispatch(req.Line)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"command": cmd.Name,
			"values":  result.Values(),
		})
	})

	r.POST("/api/complete", func(c *gin.Context) {
		req := lineRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"candidates": s.Complete(req.Line)})
	})
}
