// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `
{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard/summary": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "대시보드 요약",
                "description": "Goal 수와 평균 진행률을 유형, 분기, 팀, 제품별로 집계합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/years": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "데이터가 있는 연도 목록",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/goals": {
            "get": {
                "tags": [
                    "goals"
                ],
                "summary": "Goal 목록 조회",
                "description": "연도별 Goal 목록을 분기 순서(Q1..Q4, backlog)로 조회합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도 (생략 시 현재 활성 연도)",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "issue | feature | feedback",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "팀",
                        "name": "team",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "제품",
                        "name": "product",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Q1 | Q2 | Q3 | Q4",
                        "name": "quarter",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "goals"
                ],
                "summary": "Goal 생성",
                "parameters": [
                    {
                        "type": "string",
                        "description": "재시도 키",
                        "name": "Idempotency-Key",
                        "in": "header",
                        "required": false
                    },
                    {
                        "description": "Goal 생성 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateGoalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "중복 요청",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/goals/{id}": {
            "get": {
                "tags": [
                    "goals"
                ],
                "summary": "Goal 조회",
                "description": "마일스톤과 태스크를 포함한 Goal을 조회합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Goal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "goals"
                ],
                "summary": "Goal 수정",
                "description": "전달된 필드만 수정합니다. 날짜에 null을 보내면 값을 지웁니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Goal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Goal 수정 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateGoalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "goals"
                ],
                "summary": "Goal 삭제",
                "description": "하위 마일스톤과 태스크도 함께 삭제됩니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Goal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness",
                "description": "데이터베이스와 (설정된 경우) Redis 연결을 확인합니다",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Error"
                    }
                }
            }
        },
        "/ideas": {
            "get": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 목록 조회",
                "description": "우선순위 오름차순, 같은 우선순위는 최신 순으로 정렬됩니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "open | approved | rejected | converted",
                        "name": "status",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "issue | feature | feedback",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "제품",
                        "name": "product",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "우선순위",
                        "name": "priority",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 생성",
                "parameters": [
                    {
                        "description": "Idea 생성 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateIdeaRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/{id}": {
            "get": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 수정",
                "description": "상태는 approve/reject/convert로만 변경할 수 있습니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Idea 수정 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateIdeaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 삭제",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/{id}/approve": {
            "post": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 승인",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "허용되지 않는 상태 전환",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/{id}/reject": {
            "post": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 반려",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "허용되지 않는 상태 전환",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/{id}/convert": {
            "post": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea를 Goal로 전환",
                "description": "승인된 Idea만 전환할 수 있으며, 상태 변경과 Goal 생성은 하나의 트랜잭션으로 처리됩니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "허용되지 않는 상태 전환",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/{id}/comments": {
            "get": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 댓글 목록",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 댓글 작성",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Idea ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "댓글",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateCommentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ideas/comments/{commentId}": {
            "delete": {
                "tags": [
                    "ideas"
                ],
                "summary": "Idea 댓글 삭제",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Comment ID",
                        "name": "commentId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members": {
            "get": {
                "tags": [
                    "members"
                ],
                "summary": "Member 목록 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "existing | new",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "역할",
                        "name": "role",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "팀",
                        "name": "team",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "members"
                ],
                "summary": "Member 생성",
                "parameters": [
                    {
                        "description": "Member 생성 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members/summary": {
            "get": {
                "tags": [
                    "members"
                ],
                "summary": "인력 현황 요약",
                "description": "역할별, 제품별 인원과 신규/기존 인원 수를 집계합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/members/{id}": {
            "get": {
                "tags": [
                    "members"
                ],
                "summary": "Member 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "members"
                ],
                "summary": "Member 수정",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Member 수정 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "members"
                ],
                "summary": "Member 삭제",
                "description": "담당 중인 태스크는 담당자 없음으로 변경됩니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/milestones": {
            "get": {
                "tags": [
                    "milestones"
                ],
                "summary": "Milestone 목록 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Goal ID",
                        "name": "goalId",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "milestones"
                ],
                "summary": "Milestone 생성",
                "parameters": [
                    {
                        "description": "Milestone 생성 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateMilestoneRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Goal을 찾을 수 없음",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/milestones/{id}": {
            "get": {
                "tags": [
                    "milestones"
                ],
                "summary": "Milestone 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Milestone ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "milestones"
                ],
                "summary": "Milestone 수정",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Milestone ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Milestone 수정 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMilestoneRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "milestones"
                ],
                "summary": "Milestone 삭제",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Milestone ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/schedule/board": {
            "get": {
                "tags": [
                    "schedule"
                ],
                "summary": "분기 보드 조회",
                "description": "Goal을 backlog, Q1..Q4 버킷으로 묶고 버킷별 개수를 함께 반환합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/schedule/relocate": {
            "post": {
                "tags": [
                    "schedule"
                ],
                "summary": "Goal 분기 이동",
                "description": "Goal을 버킷에 놓으면 시작일과 종료일이 해당 분기의 첫날과 마지막 날로 바뀝니다. backlog는 날짜를 지웁니다",
                "parameters": [
                    {
                        "description": "이동 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RelocateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/surface/ws": {
            "get": {
                "tags": [
                    "surface"
                ],
                "summary": "화면 이벤트 채널",
                "description": "click, drag-start, drag-end, drop-on-bucket, progress-drag 이벤트를 받아 갱신된 보드나 요약을 응답합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "화면에 표시 중인 연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "101": {
                        "description": "OK"
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": [
                    "tasks"
                ],
                "summary": "Task 목록 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Milestone ID",
                        "name": "milestoneId",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "담당자 ID",
                        "name": "assigneeId",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Task 생성",
                "parameters": [
                    {
                        "description": "Task 생성 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Milestone 또는 담당자를 찾을 수 없음",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": [
                    "tasks"
                ],
                "summary": "Task 조회",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "tasks"
                ],
                "summary": "Task 수정",
                "description": "assigneeId에 null을 보내면 담당자를 해제합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Task 수정 요청",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "tasks"
                ],
                "summary": "Task 삭제",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/timeline": {
            "get": {
                "tags": [
                    "timeline"
                ],
                "summary": "Gantt 타임라인 조회",
                "description": "선택 연도와 다음 연도 범위로 잘린 Goal, Milestone, Task 막대를 반환합니다",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Week | Month",
                        "name": "mode",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/timeline/progress": {
            "post": {
                "tags": [
                    "timeline"
                ],
                "summary": "막대 진행률 변경",
                "description": "드래그한 진행률을 반올림해 막대의 원본 엔티티에 저장합니다",
                "parameters": [
                    {
                        "description": "진행률 변경",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProgressRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/timeline/open/{barId}": {
            "get": {
                "tags": [
                    "timeline"
                ],
                "summary": "막대 클릭",
                "description": "Goal 막대는 편집할 Goal을 반환하고, 다른 막대는 open=false를 반환합니다",
                "parameters": [
                    {
                        "type": "string",
                        "description": "막대 ID (예: goal-1)",
                        "name": "barId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/timeline/scroll": {
            "get": {
                "tags": [
                    "timeline"
                ],
                "summary": "분기 스크롤 위치",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "연도",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "분기 (1-4)",
                        "name": "quarter",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "requestId": {
                    "type": "string"
                }
            }
        },
        "response.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/response.ErrorDetail"
                },
                "requestId": {
                    "type": "string"
                }
            }
        },
        "dto.CreateGoalRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "feature"
                },
                "title": {
                    "type": "string",
                    "example": "검색 개선"
                },
                "description": {
                    "type": "string",
                    "example": "Improve search relevance"
                },
                "expectedEffect": {
                    "type": "string",
                    "example": "CTR +5%"
                },
                "year": {
                    "type": "integer",
                    "example": 2026
                },
                "team": {
                    "type": "string",
                    "example": "Platform"
                },
                "product": {
                    "type": "string",
                    "example": "Search"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "progress": {
                    "type": "integer",
                    "example": 0
                },
                "startDate": {
                    "type": "string",
                    "example": "2026-02-10"
                },
                "endDate": {
                    "type": "string",
                    "example": "2026-03-31"
                }
            },
            "required": [
                "type",
                "title",
                "year"
            ]
        },
        "dto.UpdateGoalRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "expectedEffect": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "team": {
                    "type": "string"
                },
                "product": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "progress": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                }
            }
        },
        "dto.CreateIdeaRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "feature"
                },
                "title": {
                    "type": "string",
                    "example": "다크 모드"
                },
                "description": {
                    "type": "string"
                },
                "year": {
                    "type": "integer",
                    "example": 2026
                },
                "product": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "type",
                "title",
                "year"
            ]
        },
        "dto.UpdateIdeaRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "product": {
                    "type": "string"
                },
                "priority": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateCommentRequest": {
            "type": "object",
            "properties": {
                "author": {
                    "type": "string",
                    "example": "PM"
                },
                "content": {
                    "type": "string",
                    "example": "좋은 아이디어입니다"
                }
            },
            "required": [
                "author",
                "content"
            ]
        },
        "dto.CreateMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "김민수"
                },
                "role": {
                    "type": "string",
                    "example": "Backend"
                },
                "team": {
                    "type": "string",
                    "example": "Platform"
                },
                "product": {
                    "type": "string",
                    "example": "Search"
                },
                "type": {
                    "type": "string",
                    "example": "existing"
                },
                "year": {
                    "type": "integer",
                    "example": 2026
                },
                "joinDate": {
                    "type": "string",
                    "example": "2026-03-02"
                }
            },
            "required": [
                "name",
                "role",
                "type",
                "year"
            ]
        },
        "dto.UpdateMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "team": {
                    "type": "string"
                },
                "product": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "joinDate": {
                    "type": "string"
                }
            }
        },
        "dto.CreateMilestoneRequest": {
            "type": "object",
            "properties": {
                "goalId": {
                    "type": "integer",
                    "example": 1
                },
                "title": {
                    "type": "string",
                    "example": "설계"
                },
                "description": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string",
                    "example": "2026-02-10"
                },
                "dueDate": {
                    "type": "string",
                    "example": "2026-02-28"
                },
                "progress": {
                    "type": "integer"
                }
            },
            "required": [
                "goalId",
                "title"
            ]
        },
        "dto.UpdateMilestoneRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                }
            }
        },
        "dto.RelocateRequest": {
            "type": "object",
            "properties": {
                "goalId": {
                    "type": "integer",
                    "example": 1
                },
                "bucket": {
                    "type": "string",
                    "example": "Q3"
                },
                "year": {
                    "type": "integer",
                    "example": 2026
                }
            },
            "required": [
                "goalId",
                "bucket"
            ]
        },
        "dto.ProgressRequest": {
            "type": "object",
            "properties": {
                "barId": {
                    "type": "string",
                    "example": "task-9"
                },
                "progress": {
                    "type": "number",
                    "example": 62.4
                }
            },
            "required": [
                "barId"
            ]
        },
        "dto.CreateTaskRequest": {
            "type": "object",
            "properties": {
                "milestoneId": {
                    "type": "integer",
                    "example": 1
                },
                "title": {
                    "type": "string",
                    "example": "API 초안"
                },
                "description": {
                    "type": "string"
                },
                "assigneeId": {
                    "type": "integer",
                    "example": 3
                },
                "startDate": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                }
            },
            "required": [
                "milestoneId",
                "title"
            ]
        },
        "dto.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "milestoneId": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "assigneeId": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Roadmap Dashboard API",
	Description:      "Yearly planning dashboard: goals, milestones, tasks, members and ideas on a quarter board and a Gantt timeline.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
