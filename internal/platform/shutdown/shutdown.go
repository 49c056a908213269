package shutdown

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/database"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/SlpAus/skillswap-connect-backend/pkg/lifecycle"
	"gorm.io/gorm"
)

const (
	httpTimeout    = 15 * time.Second
	serviceTimeout = httpTimeout + 5*time.Second
)

// Coordinator 负责编排应用程序的优雅停机流程。
type Coordinator struct {
	db      *gorm.DB
	manager *lifecycle.Manager
}

// NewCoordinator 创建一个新的停机协调器。后台服务通过 manager 注册。
func NewCoordinator(db *gorm.DB, manager *lifecycle.Manager) *Coordinator {
	return &Coordinator{db: db, manager: manager}
}

// ListenForSignalsAndShutdown 启动信号监听并阻塞，直到停机流程完成。
func (c *Coordinator) ListenForSignalsAndShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("收到关闭信号，开始优雅停机...")
	c.Shutdown()
}

// Shutdown 通知所有后台服务退出并等待它们完成，然后释放存储
func (c *Coordinator) Shutdown() {
	c.manager.Shutdown()
	if remaining := c.manager.WaitWithTimeout(serviceTimeout); len(remaining) > 0 {
		logger.Warn("以下后台服务未能按时退出: %v", remaining)
	}

	// 内存数据库随连接关闭而释放
	if err := database.Close(c.db); err != nil {
		logger.Error("关闭数据库失败: %v", err)
	}

	logger.Success("优雅停机完成。")
}

// Serve 运行HTTP服务器，直到 h 收到停机信号后优雅关闭（允许正在进行的请求完成）。
// 只有监听失败时才返回错误，关闭超时只记录日志。
func Serve(h *lifecycle.Handle, server *http.Server) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-h.Done():
	}

	logger.Info("Gin服务器收到停机信号: %v", h.Err())
	ctx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Gin服务器关闭错误: %v", err)
		return nil
	}
	logger.Info("Gin服务器已关闭。")
	return nil
}
