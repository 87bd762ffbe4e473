package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/arcadia-hr/hr-portal-go/internal/config"
	"github.com/arcadia-hr/hr-portal-go/internal/fixtures"
	appHTTP "github.com/arcadia-hr/hr-portal-go/internal/handler/http"
	"github.com/arcadia-hr/hr-portal-go/internal/pkg/jwt"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
	attendanceService "github.com/arcadia-hr/hr-portal-go/internal/service/attendance"
	authService "github.com/arcadia-hr/hr-portal-go/internal/service/auth"
	employeeService "github.com/arcadia-hr/hr-portal-go/internal/service/employee"
	leaveService "github.com/arcadia-hr/hr-portal-go/internal/service/leave"
	"github.com/arcadia-hr/hr-portal-go/internal/service/master"
	memoService "github.com/arcadia-hr/hr-portal-go/internal/service/memo"
	taskService "github.com/arcadia-hr/hr-portal-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := memory.NewStore()

	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	memoRepo := memory.NewMemoRepository(store)
	taskRepo := memory.NewTaskRepository(store)

	if cfg.App.Seed {
		err := fixtures.Seed(context.Background(), fixtures.Repositories{
			Employees:   employeeRepo,
			Departments: departmentRepo,
			Memos:       memoRepo,
			Tasks:       taskRepo,
		})
		if err != nil {
			log.Fatal("Failed to seed sample data:", err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	masterSvc := master.NewMasterService(departmentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Attendance.LateCutoff)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	memoSvc := memoService.NewMemoService(memoRepo, employeeRepo, departmentRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	memoHandler := appHTTP.NewMemoHandler(memoSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		masterHandler,
		attendanceHandler,
		leaveHandler,
		memoHandler,
		taskHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("HR portal listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
