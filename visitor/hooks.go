package visitor

// Hooks is the full set of pre/post callbacks a detector (or any other
// walk observer) may implement. Every visit_X fires on the way down,
// before any descendant of X is visited; every leave_X fires on the way
// back up, after every descendant of X (and X's own visit_X) has run.
// Nesting is strict: a leave_X for a given node always follows every
// visit/leave pair produced by its descendants and precedes its parent's
// own leave.
//
// An error returned by any hook aborts the walk immediately; no further
// hooks fire and the error propagates to the host unchanged.
type Hooks interface {
	VisitModule(ctx *ModuleContext) error
	LeaveModule(ctx *ModuleContext) error

	VisitModuleItem(ctx *ItemContext) error
	LeaveModuleItem(ctx *ItemContext) error

	VisitSubmodule(ctx *SubmoduleContext) error
	LeaveSubmodule(ctx *SubmoduleContext) error

	VisitUse(ctx *UseContext) error
	LeaveUse(ctx *UseContext) error

	VisitStruct(ctx *StructContext) error
	LeaveStruct(ctx *StructContext) error

	VisitStructField(ctx *StructFieldContext) error
	LeaveStructField(ctx *StructFieldContext) error

	VisitEnum(ctx *EnumContext) error
	LeaveEnum(ctx *EnumContext) error

	VisitEnumField(ctx *EnumFieldContext) error
	LeaveEnumField(ctx *EnumFieldContext) error

	VisitFn(ctx *FnContext) error
	LeaveFn(ctx *FnContext) error

	VisitStatement(ctx *StatementContext) error
	LeaveStatement(ctx *StatementContext) error

	VisitStatementLet(ctx *StatementLetContext) error
	LeaveStatementLet(ctx *StatementLetContext) error

	VisitExpr(ctx *ExprContext) error
	LeaveExpr(ctx *ExprContext) error

	VisitBlock(ctx *BlockContext) error
	LeaveBlock(ctx *BlockContext) error

	VisitAsmBlock(ctx *AsmBlockContext) error
	LeaveAsmBlock(ctx *AsmBlockContext) error

	VisitAsmInstruction(ctx *AsmInstructionContext) error
	LeaveAsmInstruction(ctx *AsmInstructionContext) error

	VisitAsmFinalExpr(ctx *AsmFinalExprContext) error
	LeaveAsmFinalExpr(ctx *AsmFinalExprContext) error

	VisitIfExpr(ctx *IfExprContext) error
	LeaveIfExpr(ctx *IfExprContext) error

	VisitMatchExpr(ctx *MatchExprContext) error
	LeaveMatchExpr(ctx *MatchExprContext) error

	VisitMatchBranch(ctx *MatchBranchContext) error
	LeaveMatchBranch(ctx *MatchBranchContext) error

	VisitWhileExpr(ctx *WhileExprContext) error
	LeaveWhileExpr(ctx *WhileExprContext) error

	VisitTrait(ctx *TraitContext) error
	LeaveTrait(ctx *TraitContext) error

	VisitImpl(ctx *ImplContext) error
	LeaveImpl(ctx *ImplContext) error

	VisitAbi(ctx *AbiContext) error
	LeaveAbi(ctx *AbiContext) error

	VisitConst(ctx *ConstContext) error
	LeaveConst(ctx *ConstContext) error

	VisitStorage(ctx *StorageContext) error
	LeaveStorage(ctx *StorageContext) error

	VisitStorageField(ctx *StorageFieldContext) error
	LeaveStorageField(ctx *StorageFieldContext) error

	VisitConfigurable(ctx *ConfigurableContext) error
	LeaveConfigurable(ctx *ConfigurableContext) error

	VisitConfigurableField(ctx *ConfigurableFieldContext) error
	LeaveConfigurableField(ctx *ConfigurableFieldContext) error

	VisitTypeAlias(ctx *TypeAliasContext) error
	LeaveTypeAlias(ctx *TypeAliasContext) error
}

// BaseHooks implements Hooks with no-op bodies. A detector embeds
// BaseHooks and overrides only the hooks it cares about, the same way a
// detector would override a handful of default trait methods.
type BaseHooks struct{}

func (BaseHooks) VisitModule(*ModuleContext) error { return nil }
func (BaseHooks) LeaveModule(*ModuleContext) error { return nil }

func (BaseHooks) VisitModuleItem(*ItemContext) error { return nil }
func (BaseHooks) LeaveModuleItem(*ItemContext) error { return nil }

func (BaseHooks) VisitSubmodule(*SubmoduleContext) error { return nil }
func (BaseHooks) LeaveSubmodule(*SubmoduleContext) error { return nil }

func (BaseHooks) VisitUse(*UseContext) error { return nil }
func (BaseHooks) LeaveUse(*UseContext) error { return nil }

func (BaseHooks) VisitStruct(*StructContext) error { return nil }
func (BaseHooks) LeaveStruct(*StructContext) error { return nil }

func (BaseHooks) VisitStructField(*StructFieldContext) error { return nil }
func (BaseHooks) LeaveStructField(*StructFieldContext) error { return nil }

func (BaseHooks) VisitEnum(*EnumContext) error { return nil }
func (BaseHooks) LeaveEnum(*EnumContext) error { return nil }

func (BaseHooks) VisitEnumField(*EnumFieldContext) error { return nil }
func (BaseHooks) LeaveEnumField(*EnumFieldContext) error { return nil }

func (BaseHooks) VisitFn(*FnContext) error { return nil }
func (BaseHooks) LeaveFn(*FnContext) error { return nil }

func (BaseHooks) VisitStatement(*StatementContext) error { return nil }
func (BaseHooks) LeaveStatement(*StatementContext) error { return nil }

func (BaseHooks) VisitStatementLet(*StatementLetContext) error { return nil }
func (BaseHooks) LeaveStatementLet(*StatementLetContext) error { return nil }

func (BaseHooks) VisitExpr(*ExprContext) error { return nil }
func (BaseHooks) LeaveExpr(*ExprContext) error { return nil }

func (BaseHooks) VisitBlock(*BlockContext) error { return nil }
func (BaseHooks) LeaveBlock(*BlockContext) error { return nil }

func (BaseHooks) VisitAsmBlock(*AsmBlockContext) error { return nil }
func (BaseHooks) LeaveAsmBlock(*AsmBlockContext) error { return nil }

func (BaseHooks) VisitAsmInstruction(*AsmInstructionContext) error { return nil }
func (BaseHooks) LeaveAsmInstruction(*AsmInstructionContext) error { return nil }

func (BaseHooks) VisitAsmFinalExpr(*AsmFinalExprContext) error { return nil }
func (BaseHooks) LeaveAsmFinalExpr(*AsmFinalExprContext) error { return nil }

func (BaseHooks) VisitIfExpr(*IfExprContext) error { return nil }
func (BaseHooks) LeaveIfExpr(*IfExprContext) error { return nil }

func (BaseHooks) VisitMatchExpr(*MatchExprContext) error { return nil }
func (BaseHooks) LeaveMatchExpr(*MatchExprContext) error { return nil }

func (BaseHooks) VisitMatchBranch(*MatchBranchContext) error { return nil }
func (BaseHooks) LeaveMatchBranch(*MatchBranchContext) error { return nil }

func (BaseHooks) VisitWhileExpr(*WhileExprContext) error { return nil }
func (BaseHooks) LeaveWhileExpr(*WhileExprContext) error { return nil }

func (BaseHooks) VisitTrait(*TraitContext) error { return nil }
func (BaseHooks) LeaveTrait(*TraitContext) error { return nil }

func (BaseHooks) VisitImpl(*ImplContext) error { return nil }
func (BaseHooks) LeaveImpl(*ImplContext) error { return nil }

func (BaseHooks) VisitAbi(*AbiContext) error { return nil }
func (BaseHooks) LeaveAbi(*AbiContext) error { return nil }

func (BaseHooks) VisitConst(*ConstContext) error { return nil }
func (BaseHooks) LeaveConst(*ConstContext) error { return nil }

func (BaseHooks) VisitStorage(*StorageContext) error { return nil }
func (BaseHooks) LeaveStorage(*StorageContext) error { return nil }

func (BaseHooks) VisitStorageField(*StorageFieldContext) error { return nil }
func (BaseHooks) LeaveStorageField(*StorageFieldContext) error { return nil }

func (BaseHooks) VisitConfigurable(*ConfigurableContext) error { return nil }
func (BaseHooks) LeaveConfigurable(*ConfigurableContext) error { return nil }

func (BaseHooks) VisitConfigurableField(*ConfigurableFieldContext) error { return nil }
func (BaseHooks) LeaveConfigurableField(*ConfigurableFieldContext) error { return nil }

func (BaseHooks) VisitTypeAlias(*TypeAliasContext) error { return nil }
func (BaseHooks) LeaveTypeAlias(*TypeAliasContext) error { return nil }
